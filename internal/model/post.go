package model

import (
	"strings"
	"time"

	"github.com/BloggingApp/post-catalog/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type Post struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt"`
	PostTypeID  uuid.UUID   `json:"postTypeId"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Cover       string      `json:"cover"`
	Tags        []uuid.UUID `json:"tags"`
}

// BuildPost carries the raw, unvalidated properties of a post.
// Slug is optional and derived from Name when empty.
type BuildPost struct {
	PostTypeID  string
	Name        string
	Slug        string
	Description string
	Cover       string
	Tags        []string
}

type EntityProps struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewPost(input BuildPost, props *EntityProps) (*Post, error) {
	postTypeID, err := parseUUID(input.PostTypeID, "postTypeId")
	if err != nil {
		return nil, err
	}

	post := &Post{PostTypeID: postTypeID}

	if err := post.setName(input.Name); err != nil {
		return nil, err
	}

	if input.Slug != "" {
		if err := post.setSlug(input.Slug); err != nil {
			return nil, err
		}
	}

	if err := post.setDescription(input.Description); err != nil {
		return nil, err
	}
	if err := post.setCover(input.Cover); err != nil {
		return nil, err
	}
	if err := post.setTags(input.Tags); err != nil {
		return nil, err
	}

	if props == nil {
		post.ID = uuid.New()
		post.CreatedAt = now()
		return post, nil
	}

	if props.ID == uuid.Nil || props.CreatedAt.IsZero() {
		return nil, &InvalidDomainDataError{Layer: PostLayer}
	}
	post.ID = props.ID
	post.CreatedAt = props.CreatedAt
	post.UpdatedAt = props.UpdatedAt

	return post, nil
}

// Rename changes the name and re-derives the slug from it.
func (p *Post) Rename(name string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Post) ChangePostType(postTypeID string) error {
	id, err := parseUUID(postTypeID, "postTypeId")
	if err != nil {
		return err
	}
	p.PostTypeID = id
	p.touch()
	return nil
}

func (p *Post) UpdateDescription(description string) error {
	if err := p.setDescription(description); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Post) UpdateCover(cover string) error {
	if err := p.setCover(cover); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Post) UpdateTags(tags []string) error {
	if err := p.setTags(tags); err != nil {
		return err
	}
	p.touch()
	return nil
}

// Validate re-checks every invariant of an already built post.
func (p *Post) Validate() error {
	if p == nil {
		return &InvalidDomainDataError{Layer: PostLayer}
	}
	if p.ID == uuid.Nil || p.CreatedAt.IsZero() {
		return &InvalidDomainDataError{Layer: PostLayer}
	}
	if p.PostTypeID == uuid.Nil {
		return &InvalidPropertyError{Property: "postTypeId", Layer: PostLayer}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &InvalidPropertyError{Property: "name", Layer: PostLayer}
	}
	if !utils.IsSlug(p.Slug) {
		return &InvalidPropertyError{Property: "slug", Layer: PostLayer}
	}
	if strings.TrimSpace(p.Description) == "" {
		return &InvalidPropertyError{Property: "description", Layer: PostLayer}
	}
	if validate.Var(p.Cover, "required,url") != nil {
		return &InvalidPropertyError{Property: "cover", Layer: PostLayer}
	}
	for _, tag := range p.Tags {
		if tag == uuid.Nil {
			return &InvalidPropertyError{Property: "tags", Layer: PostLayer}
		}
	}
	return nil
}

func (p *Post) TagStrings() []string {
	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, tag.String())
	}
	return tags
}

func (p *Post) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidPropertyError{Property: "name", Layer: PostLayer}
	}
	if err := p.setSlug(name); err != nil {
		return err
	}
	p.Name = name
	return nil
}

func (p *Post) setSlug(value string) error {
	s := utils.Slugify(value)
	if s == "" {
		return &InvalidPropertyError{Property: "slug", Layer: PostLayer}
	}
	p.Slug = s
	return nil
}

func (p *Post) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &InvalidPropertyError{Property: "description", Layer: PostLayer}
	}
	p.Description = description
	return nil
}

func (p *Post) setCover(cover string) error {
	if err := validate.Var(cover, "required,url"); err != nil {
		return &InvalidPropertyError{Property: "cover", Layer: PostLayer}
	}
	p.Cover = cover
	return nil
}

func (p *Post) setTags(tags []string) error {
	parsed := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		id, err := parseUUID(tag, "tags")
		if err != nil {
			return err
		}
		parsed = append(parsed, id)
	}
	p.Tags = parsed
	return nil
}

func (p *Post) touch() {
	updatedAt := now()
	p.UpdatedAt = &updatedAt
}

// now is truncated to the precision Postgres keeps for timestamptz.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func parseUUID(value string, property string) (uuid.UUID, error) {
	if !utils.IsStrictIdentifier(value) {
		return uuid.Nil, &InvalidPropertyError{Property: property, Layer: PostLayer}
	}
	return uuid.MustParse(value), nil
}
