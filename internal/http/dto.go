package httpapi

import (
	"encoding/json"
	"time"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"
)

type ProjectCardDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	RepoURL     *string  `json:"repoUrl,omitempty"`
	DemoURL     *string  `json:"demoUrl,omitempty"`
	CoverURL    *string  `json:"coverUrl,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

type ProjectDetailDTO struct {
	ProjectCardDTO
	Content         json.RawMessage        `json:"content,omitempty"`
	HTML            string                 `json:"html,omitempty"`
	Gallery         []string               `json:"gallery"`
	Contributors    []services.Contributor `json:"contributors"`
	Acknowledgement *string                `json:"acknowledgement,omitempty"`
	Related         []ProjectCardDTO       `json:"related,omitempty"`
}

type PostCardDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	AuthorName  string   `json:"authorName"`
	Tags        []string `json:"tags"`
	ReadTime    *string  `json:"readTime,omitempty"`
	Featured    bool     `json:"featured"`
	CoverURL    *string  `json:"coverUrl,omitempty"`
	PublishedAt *string  `json:"publishedAt,omitempty"`
}

type PostDetailDTO struct {
	PostCardDTO
	Content json.RawMessage `json:"content,omitempty"`
	HTML    string          `json:"html,omitempty"`
	Related []PostCardDTO   `json:"related,omitempty"`
}

type ProfileDTO struct {
	FullName    *string `json:"fullName,omitempty"`
	Title       *string `json:"title,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Location    *string `json:"location,omitempty"`
	GithubURL   *string `json:"githubUrl,omitempty"`
	LinkedinURL *string `json:"linkedinUrl,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}

type ExperienceDTO struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     *string  `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	SortOrder    int      `json:"sortOrder"`
}

type EducationDTO struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	StartYear   *string  `json:"startYear,omitempty"`
	EndYear     *string  `json:"endYear,omitempty"`
	Courses     []string `json:"courses"`
	SortOrder   int      `json:"sortOrder"`
}

type SkillDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	SortOrder   int    `json:"sortOrder"`
}

type SkillGroupDTO struct {
	Category string     `json:"category"`
	Skills   []SkillDTO `json:"skills"`
}

type CertificationDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Issuer    string  `json:"issuer"`
	Issued    *string `json:"issued,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	SortOrder int     `json:"sortOrder"`
}

type MessageDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject,omitempty"`
	Body      string  `json:"body"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt"`
}

func projectCard(p models.Project) ProjectCardDTO {
	var cover *string
	if gallery := services.ProjectGallery(p); len(gallery) > 0 {
		cover = &gallery[0]
	}
	return ProjectCardDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Tags:        services.ProjectTags(p),
		Featured:    p.Featured,
		RepoURL:     p.RepoURL,
		DemoURL:     p.DemoURL,
		CoverURL:    cover,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func projectCards(projects []models.Project) []ProjectCardDTO {
	cards := make([]ProjectCardDTO, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, projectCard(p))
	}
	return cards
}

func projectDetail(p models.Project, includeRaw bool, html string) ProjectDetailDTO {
	detail := ProjectDetailDTO{
		ProjectCardDTO:  projectCard(p),
		HTML:            html,
		Gallery:         services.ProjectGallery(p),
		Contributors:    services.ProjectContributors(p),
		Acknowledgement: p.Acknowledgement,
	}
	if includeRaw {
		detail.Content = json.RawMessage(p.Content)
	}
	return detail
}

func postCard(p models.BlogPost) PostCardDTO {
	var published *string
	if p.PublishedAt != nil {
		formatted := p.PublishedAt.UTC().Format(time.RFC3339)
		published = &formatted
	}
	return PostCardDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		AuthorName:  p.AuthorName,
		Tags:        services.PostTags(p),
		ReadTime:    p.ReadTime,
		Featured:    p.Featured,
		CoverURL:    p.CoverURL,
		PublishedAt: published,
	}
}

func postCards(posts []models.BlogPost) []PostCardDTO {
	cards := make([]PostCardDTO, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, postCard(p))
	}
	return cards
}

func postDetail(p models.BlogPost, includeRaw bool, html string) PostDetailDTO {
	detail := PostDetailDTO{
		PostCardDTO: postCard(p),
		HTML:        html,
	}
	if includeRaw {
		detail.Content = json.RawMessage(p.Content)
	}
	return detail
}

func profileDTO(p models.Profile) ProfileDTO {
	return ProfileDTO{
		FullName:    p.FullName,
		Title:       p.Title,
		Bio:         p.Bio,
		Email:       p.Email,
		Phone:       p.Phone,
		Location:    p.Location,
		GithubURL:   p.GithubURL,
		LinkedinURL: p.LinkedinURL,
		AvatarURL:   p.AvatarURL,
	}
}

func experienceDTO(e models.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:           e.ID,
		JobTitle:     e.JobTitle,
		Company:      e.Company,
		Location:     e.Location,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		Description:  e.Description,
		Achievements: services.ExperienceAchievements(e),
		Technologies: services.ExperienceTechnologies(e),
		SortOrder:    e.SortOrder,
	}
}

func experienceDTOs(entries []models.Experience) []ExperienceDTO {
	items := make([]ExperienceDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, experienceDTO(e))
	}
	return items
}

func educationDTO(e models.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID,
		Degree:      e.Degree,
		Institution: e.Institution,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear,
		Courses:     services.EducationCourses(e),
		SortOrder:   e.SortOrder,
	}
}

func educationDTOs(entries []models.Education) []EducationDTO {
	items := make([]EducationDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, educationDTO(e))
	}
	return items
}

func skillDTO(s models.Skill) SkillDTO {
	return SkillDTO{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		SortOrder:   s.SortOrder,
	}
}

func skillDTOs(skills []models.Skill) []SkillDTO {
	items := make([]SkillDTO, 0, len(skills))
	for _, s := range skills {
		items = append(items, skillDTO(s))
	}
	return items
}

// groupSkills buckets skills by category, keeping the store's order both
// across groups and inside each group.
func groupSkills(skills []models.Skill) []SkillGroupDTO {
	groups := []SkillGroupDTO{}
	index := map[string]int{}
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroupDTO{Category: s.Category, Skills: []SkillDTO{}})
		}
		groups[i].Skills = append(groups[i].Skills, skillDTO(s))
	}
	return groups
}

func certificationDTO(c models.Certification) CertificationDTO {
	return CertificationDTO{
		ID:        c.ID,
		Name:      c.Name,
		Issuer:    c.Issuer,
		Issued:    c.Issued,
		ImageURL:  c.ImageURL,
		SortOrder: c.SortOrder,
	}
}

func certificationDTOs(certs []models.Certification) []CertificationDTO {
	items := make([]CertificationDTO, 0, len(certs))
	for _, c := range certs {
		items = append(items, certificationDTO(c))
	}
	return items
}

func messageDTO(m models.ContactMessage) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
