package models

import "time"

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Status       string     `db:"status"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Profile is the site owner's public profile, one row keyed by user id.
type Profile struct {
	UserID      string    `db:"user_id"`
	FullName    *string   `db:"full_name"`
	Title       *string   `db:"title"`
	Bio         *string   `db:"bio"`
	Email       *string   `db:"email"`
	Phone       *string   `db:"phone"`
	Location    *string   `db:"location"`
	GithubURL   *string   `db:"github_url"`
	LinkedinURL *string   `db:"linkedin_url"`
	AvatarURL   *string   `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type MediaAsset struct {
	ID          string    `db:"id"`
	Bucket      string    `db:"bucket"`
	StorageKey  string    `db:"storage_key"`
	Filename    *string   `db:"filename"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	Sha256      *string   `db:"sha256"`
	CreatedAt   time.Time `db:"created_at"`
}

// Project keeps tags, gallery and contributors as JSONB columns; the
// services layer owns their (de)serialization.
type Project struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Slug            string    `db:"slug"`
	Description     string    `db:"description"`
	Content         []byte    `db:"content"`
	Tags            []byte    `db:"tags"`
	Featured        bool      `db:"featured"`
	RepoURL         *string   `db:"repo_url"`
	DemoURL         *string   `db:"demo_url"`
	Gallery         []byte    `db:"gallery"`
	Contributors    []byte    `db:"contributors"`
	Acknowledgement *string   `db:"acknowledgement"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type BlogPost struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     []byte     `db:"content"`
	AuthorName  string     `db:"author_name"`
	Tags        []byte     `db:"tags"`
	ReadTime    *string    `db:"read_time"`
	Featured    bool       `db:"featured"`
	CoverURL    *string    `db:"cover_url"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type Experience struct {
	ID           string    `db:"id"`
	JobTitle     string    `db:"job_title"`
	Company      string    `db:"company"`
	Location     *string   `db:"location"`
	StartDate    string    `db:"start_date"`
	EndDate      *string   `db:"end_date"`
	Current      bool      `db:"current"`
	Description  string    `db:"description"`
	Achievements []byte    `db:"achievements"`
	Technologies []byte    `db:"technologies"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Education struct {
	ID          string    `db:"id"`
	Degree      string    `db:"degree"`
	Institution string    `db:"institution"`
	StartYear   *string   `db:"start_year"`
	EndYear     *string   `db:"end_year"`
	Courses     []byte    `db:"courses"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Skill struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Proficiency int       `db:"proficiency"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Certification struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Issuer    string    `db:"issuer"`
	Issued    *string   `db:"issued"`
	ImageURL  *string   `db:"image_url"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   *string   `db:"subject"`
	Body      string    `db:"body"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type SiteVisit struct {
	ID        string    `db:"id"`
	IPAddress *string   `db:"ip_address"`
	UserAgent *string   `db:"user_agent"`
	Path      *string   `db:"path"`
	Referrer  *string   `db:"referrer"`
	CreatedAt time.Time `db:"created_at"`
}
