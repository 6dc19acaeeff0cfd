package content

import (
	"errors"

	"gorm.io/gorm"

	"driftboard/internal/models"
)

// Resolver loads one content item by id using the caller's transaction handle,
// so resolution can participate in the caller's atomic unit.
type Resolver func(tx *gorm.DB, id uint) (Item, error)

// Registry maps a kind tag to its resolver. Registration happens once at
// startup; after that the registry is read-only and safe for concurrent use.
type Registry struct {
	resolvers map[Kind]Resolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[Kind]Resolver)}
}

func (r *Registry) Register(kind Kind, fn Resolver) {
	r.resolvers[kind] = fn
}

// ParseKind validates a raw kind tag from the request layer.
func (r *Registry) ParseKind(raw string) (Kind, error) {
	kind := Kind(raw)
	if _, ok := r.resolvers[kind]; !ok {
		return "", ErrInvalidTarget
	}
	return kind, nil
}

// Resolve returns the content item named by (kind, id). An unrecognized kind
// fails with ErrInvalidTarget before any lookup; a recognized kind with no
// matching row fails with ErrNotFound.
func (r *Registry) Resolve(tx *gorm.DB, kind Kind, id uint) (Item, error) {
	fn, ok := r.resolvers[kind]
	if !ok {
		return nil, ErrInvalidTarget
	}
	return fn(tx, id)
}

// NewDefaultRegistry wires resolvers for the two built-in kinds.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindSubmission, func(tx *gorm.DB, id uint) (Item, error) {
		var submission models.Submission
		if err := tx.First(&submission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return submission, nil
	})
	r.Register(KindComment, func(tx *gorm.DB, id uint) (Item, error) {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return comment, nil
	})
	return r
}
