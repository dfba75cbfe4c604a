package repository

import "github.com/tu-usuario/materiales-pro/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByClient(clientID string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	// Reassign cambia el cliente dueño del proyecto en un solo UPDATE (atómico).
	Reassign(projectID, newClientID string) error
	Delete(id string) error
}
