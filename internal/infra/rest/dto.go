package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"harvest/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type userDTO struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (u *userDTO) toEntity() entity.User {
	name := u.FullName
	if name == "" {
		name = u.Name
	}

	return entity.User{
		ID:       u.ID,
		FullName: name,
		Image:    u.Image,
		Phone:    u.Phone,
		Role:     entity.Role(u.Role),
	}
}

// ref is a document reference that the backend sends either as a bare id or
// as the populated document.
type ref struct {
	ID   string
	User *userDTO
}

func (r *ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var doc userDTO
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	r.User = &doc

	return nil
}

type messageDTO struct {
	ID        string    `json:"_id"`
	Chat      ref       `json:"chat"`
	Sender    ref       `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *messageDTO) toEntity(conversationID string) *entity.Message {
	if m.Chat.ID != "" {
		conversationID = m.Chat.ID
	}

	return &entity.Message{
		ID:             m.ID,
		ConversationID: conversationID,
		SenderID:       m.Sender.ID,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

type chatDTO struct {
	ID               string      `json:"_id"`
	OtherParticipant *userDTO    `json:"otherParticipant"`
	LastMessage      *messageDTO `json:"lastMessage"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func (c *chatDTO) toEntity() *entity.Conversation {
	conv := &entity.Conversation{ID: c.ID, UpdatedAt: c.UpdatedAt}
	if c.OtherParticipant != nil {
		conv.Counterparty = c.OtherParticipant.toEntity()
	}
	if c.LastMessage != nil {
		conv.LastMessage = c.LastMessage.toEntity(c.ID)
	}

	return conv
}

type sellerDTO struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	FullName string          `json:"fullName"`
	FarmName string          `json:"farmName"`
	Location json.RawMessage `json:"location"`
}

type productDTO struct {
	ID            string     `json:"_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Quantity      string     `json:"quantity"`
	Category      string     `json:"category"`
	Image         string     `json:"image"`
	AverageRating float64    `json:"averageRating"`
	NumOfReviews  int        `json:"numOfReviews"`
	Seller        *sellerDTO `json:"seller"`
}

func (p *productDTO) toEntity() *entity.Product {
	product := &entity.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Quantity:      p.Quantity,
		Category:      p.Category,
		Image:         p.Image,
		AverageRating: p.AverageRating,
		NumOfReviews:  p.NumOfReviews,
	}

	if p.Seller != nil {
		name := p.Seller.Name
		if name == "" {
			name = p.Seller.FullName
		}
		product.Seller = entity.Seller{
			ID:       p.Seller.ID,
			Name:     name,
			FarmName: p.Seller.FarmName,
			Location: decodeLocation(p.Seller.Location),
		}
	}

	return product
}

// decodeLocation reads a GeoJSON Point. Anything else yields nil so one bad
// listing never fails the whole product list.
func decodeLocation(raw json.RawMessage) *entity.Coordinate {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil || geom.Coordinates == nil {
		return nil
	}

	point, ok := geom.Coordinates.(orb.Point)
	if !ok {
		return nil
	}

	coord := entity.CoordinateFromPoint(point)
	if !coord.Valid() {
		return nil
	}

	return &coord
}
