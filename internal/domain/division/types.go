package division

import "github.com/magangkita/admin-console-go/internal/domain/user"

type Division struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	MemberCount int            `json:"member_count"`
	Members     []user.Summary `json:"members,omitempty"`
}
