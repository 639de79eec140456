package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"ecofinds/internal/domain"
)

const userCols = `id,email,name,password_hash,location,bio,rating,total_sales,joined_at`

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,name,password_hash,location,bio,rating,total_sales,joined_at)
		VALUES(?,?,?,?,?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Location, u.Bio, u.Rating, u.TotalSales, u.JoinedAt)
	return err
}

// UpdateProfile overwrites the editable profile fields.
func (r *UserRepo) UpdateProfile(id, name, email, location, bio string) error {
	_, err := r.DB.Exec(`
		UPDATE users SET name=?, email=?, location=?, bio=?, updated_at=?
		WHERE id=?`,
		name, email, location, bio, time.Now().UTC().Format(time.RFC3339), id)
	return err
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,u.password_hash,u.location,u.bio,u.rating,u.total_sales,u.joined_at
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
