// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

const defaultAvatar = "no-photo.jpg"

// User is the public profile of a marketplace member.
type User struct {
	ID       string `json:"id"`       // Backend identifier of the user.
	FullName string `json:"fullName"` // Display name.
	Image    string `json:"image"`    // Avatar reference, either a file name or an absolute URL.
	Phone    string `json:"phone"`    // Contact phone, used for the call shortcut.
	Role     Role   `json:"role"`     // Marketplace role; empty when the backend omits it.
}

// AvatarURL resolves the avatar reference against the uploads base.
// It returns an empty string when the user has no avatar.
func (u User) AvatarURL(uploadsBase string) string {
	if u.Image == "" || u.Image == defaultAvatar {
		return ""
	}
	if strings.HasPrefix(u.Image, "http") {
		return u.Image
	}

	return strings.TrimRight(uploadsBase, "/") + "/" + u.Image
}
