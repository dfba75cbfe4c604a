package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, client_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.ClientID, project.Name, project.Description,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, client_id, name, description, created_at, updated_at
		FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ListByClient lista los proyectos de un cliente, más recientes primero.
func (r *ProjectRepo) ListByClient(clientID string) ([]*entity.Project, error) {
	query := `
		SELECT id, client_id, name, description, created_at, updated_at
		FROM projects WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de un proyecto.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Reassign cambia el cliente dueño del proyecto. Un solo UPDATE: el proyecto
// nunca queda sin dueño ni con dos dueños.
func (r *ProjectRepo) Reassign(projectID, newClientID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE projects SET client_id = $2, updated_at = now() WHERE id = $1`,
		projectID, newClientID,
	)
	if err != nil {
		return fmt.Errorf("reassign project: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proyecto por ID.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
