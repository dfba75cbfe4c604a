package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes y sus proyectos.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, projectRepo: projectRepo}
}

// Create crea un nuevo cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		Discount:  in.Discount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación; con term busca por nombre
// (insensible a tildes).
func (uc *ClientUseCase) List(term string, limit, offset int) ([]*dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Client
	var err error
	if term != "" {
		list, err = uc.clientRepo.Search(term, limit, offset)
	} else {
		list, err = uc.clientRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente existente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Address = in.Address
	client.Email = in.Email
	client.Phone = in.Phone
	client.Discount = in.Discount
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

// ── Proyectos ─────────────────────────────────────────────────────────────────

// CreateProject crea un proyecto asociado a un cliente.
func (uc *ClientUseCase) CreateProject(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.ClientID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// ListProjects lista los proyectos de un cliente.
func (uc *ClientUseCase) ListProjects(clientID string) ([]*dto.ProjectResponse, error) {
	list, err := uc.projectRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// UpdateProject actualiza nombre y descripción de un proyecto.
func (uc *ClientUseCase) UpdateProject(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = in.Name
	project.Description = in.Description
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// ReassignProject cambia el cliente dueño del proyecto. Un proyecto pertenece
// a exactamente un cliente a la vez; el cambio de dueño es un solo UPDATE.
func (uc *ClientUseCase) ReassignProject(projectID string, in dto.ReassignProjectRequest) (*dto.ProjectResponse, error) {
	if in.NewClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	newOwner, err := uc.clientRepo.GetByID(in.NewClientID)
	if err != nil {
		return nil, err
	}
	if newOwner == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.projectRepo.Reassign(projectID, in.NewClientID); err != nil {
		return nil, err
	}
	project.ClientID = in.NewClientID
	return toProjectResponse(project), nil
}

// DeleteProject elimina un proyecto.
func (uc *ClientUseCase) DeleteProject(id string) error {
	project, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.projectRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Address:  c.Address,
		Email:    c.Email,
		Phone:    c.Phone,
		Discount: c.Discount,
	}
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
	}
}
