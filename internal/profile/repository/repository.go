package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type ProfileRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrProfileNotFound = errors.New("profile not found")

func NewProfileRepository(db *bun.DB, logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	_, err := r.db.NewInsert().Model(p).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.Create.Insert: ")
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p := new(models.Profile)
	err := r.db.NewSelect().Model(p).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profileRepo.GetByID.Scan: ")
	}
	return p, nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	p := new(models.Profile)
	err := r.db.NewSelect().Model(p).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profileRepo.GetByUsername.Scan: ")
	}
	return p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile, columns ...string) error {
	q := r.db.NewUpdate().Model(p).WherePK()
	if len(columns) > 0 {
		q = q.Column(columns...)
	}
	_, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.Update.Exec: ")
	}
	return nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.NewSelect().Model(&profiles).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.ListAll.Scan: ")
	}
	return profiles, nil
}

func (r *ProfileRepository) Search(ctx context.Context, query string, limit int) ([]*models.Profile, error) {
	var profiles []*models.Profile
	pattern := "%" + query + "%"
	err := r.db.NewSelect().
		Model(&profiles).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("username ILIKE ?", pattern).WhereOr("display_name ILIKE ?", pattern)
		}).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.Search.Scan: ")
	}
	return profiles, nil
}

func (r *ProfileRepository) Leaderboard(ctx context.Context, limit int) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.NewSelect().
		Model(&profiles).
		Order("points DESC").
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.Leaderboard.Scan: ")
	}
	return profiles, nil
}

func (r *ProfileRepository) AddPoints(ctx context.Context, id uuid.UUID, delta int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Profile)(nil)).
		Set("points = points + ?", delta).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.AddPoints.Exec: ")
	}
	return nil
}
