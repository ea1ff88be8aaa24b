package user

import (
	"github.com/magangkita/admin-console-go/internal/domain/display"
)

type Role string

const (
	RoleAdmin      Role = "admin"      // Administrator - full console access
	RoleSupervisor Role = "supervisor" // Reviews logbooks and leave requests
	RoleIntern     Role = "user"       // Regular intern
)

// Source is the categorical origin of an intern.
type Source string

const (
	SourceCampus     Source = "campus"
	SourceGovernment Source = "government"
	SourcePrivate    Source = "private"
	SourceInternal   Source = "internal"
	SourcePublic     Source = "public"
)

// Sources lists every known source of internship, in display order.
var Sources = []Source{SourceCampus, SourceGovernment, SourcePrivate, SourceInternal, SourcePublic}

type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	DivisionID   string  `json:"division_id"`
	DivisionName string  `json:"division_name"`
	Cohort       string  `json:"cohort"`
	Source       Source  `json:"source_of_internship"`
	SupervisorID string  `json:"supervisor_id"`
	Phone        *string `json:"phone,omitempty"`
	Campus       *string `json:"campus,omitempty"`
	Active       bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

// Summary is the slice of user fields other records embed for display and
// client-side filtering.
type Summary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	DivisionID string `json:"division_id"`
	Cohort     string `json:"cohort"`
	Source     Source `json:"source_of_internship"`
}

var roleBadges = map[Role]display.Badge{
	RoleAdmin:      {Label: "Admin", Color: "purple", Icon: "shield"},
	RoleSupervisor: {Label: "Supervisor", Color: "blue", Icon: "eye"},
	RoleIntern:     {Label: "Intern", Color: "teal", Icon: "user"},
}

var sourceBadges = map[Source]display.Badge{
	SourceCampus:     {Label: "Campus", Color: "blue", Icon: "school"},
	SourceGovernment: {Label: "Government", Color: "amber", Icon: "landmark"},
	SourcePrivate:    {Label: "Private", Color: "indigo", Icon: "briefcase"},
	SourceInternal:   {Label: "Internal", Color: "teal", Icon: "building"},
	SourcePublic:     {Label: "Public", Color: "green", Icon: "users"},
}

// RoleBadge resolves the badge for a role.
func RoleBadge(r Role) display.Badge {
	return display.Lookup(roleBadges, r)
}

// SourceBadge resolves the badge for a source of internship.
func SourceBadge(s Source) display.Badge {
	return display.Lookup(sourceBadges, s)
}
