package handler

import (
	"time"

	"ecrc42/internal/caseexample/models"
	id "ecrc42/pkg/domain"
)

type AdminCommentResponse struct {
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	AdminEmail string    `json:"admin_email"`
}

// CaseResponse shows the counts to everybody and the caller's own reactions
// and tags, never the ids of other users.
type CaseResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Category        string                `json:"category"`
	AuthorName      string                `json:"author_name"`
	CreatedAt       time.Time             `json:"created_at"`
	Reactions       map[string]int        `json:"reactions"`
	Tags            []string              `json:"tags"`
	MyReactions     []string              `json:"my_reactions"`
	MyTags          []string              `json:"my_tags"`
	Engagement      int                   `json:"engagement"`
	Featured        bool                  `json:"featured"`
	AdminComment    *AdminCommentResponse `json:"admin_comment,omitempty"`
	IsOwnSubmission bool                  `json:"is_own_submission"`
}

type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
	Total int            `json:"total"`
}

type ToggleResponse struct {
	Active bool         `json:"active"`
	Case   CaseResponse `json:"case"`
}

// OptionsResponse lists the allowed reactions and tags.
type OptionsResponse struct {
	Emojis []string `json:"emojis"`
	Tags   []string `json:"tags"`
}

func FromCase(c *models.Case, viewer id.UserID) CaseResponse {
	resp := CaseResponse{
		ID:              c.ID.String(),
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		AuthorName:      c.AuthorName,
		CreatedAt:       c.CreatedAt,
		Reactions:       make(map[string]int, len(c.Reactions)),
		Tags:            c.Tags,
		MyReactions:     []string{},
		MyTags:          []string{},
		Engagement:      c.Engagement(),
		Featured:        c.Featured(),
		IsOwnSubmission: c.AuthorID == viewer,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, emoji := range models.Emojis {
		if n := len(c.Reactions[emoji]); n > 0 {
			resp.Reactions[emoji] = n
		}
		if c.HasReaction(emoji, viewer) {
			resp.MyReactions = append(resp.MyReactions, emoji)
		}
	}
	if tags := c.UserTags[viewer.String()]; tags != nil {
		resp.MyTags = tags
	}
	if c.AdminComment != nil {
		resp.AdminComment = &AdminCommentResponse{
			Text:       c.AdminComment.Text,
			CreatedAt:  c.AdminComment.CreatedAt,
			AdminEmail: c.AdminComment.AdminEmail,
		}
	}
	return resp
}

func FromCases(cases []*models.Case, viewer id.UserID) CaseListResponse {
	resp := CaseListResponse{Cases: make([]CaseResponse, 0, len(cases)), Total: len(cases)}
	for _, c := range cases {
		resp.Cases = append(resp.Cases, FromCase(c, viewer))
	}
	return resp
}
