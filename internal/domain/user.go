package domain

type User struct {
	ID         string  `db:"id" json:"id"`
	Email      string  `db:"email" json:"email"`
	Name       string  `db:"name" json:"name"`
	Hash       string  `db:"password_hash" json:"-"`
	Location   string  `db:"location" json:"location"`
	Bio        string  `db:"bio" json:"bio"`
	Rating     float64 `db:"rating" json:"rating"`
	TotalSales int     `db:"total_sales" json:"totalSales"`
	JoinedAt   string  `db:"joined_at" json:"joinedDate"`
}
