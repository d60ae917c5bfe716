// Package repository maps domain collections onto the storage gateway.
// Every mutation is a load-modify-save of the whole collection, matching
// the gateway's blob contract.
package repository

import (
	"lerida/internal/storage"
)

type Repositories struct {
	Users   *UserRepository
	Session *SessionRepository
	Brands  *BrandRepository
	Events  *EventRepository
}

func NewRepositories(store storage.Store) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(store),
		Session: NewSessionRepository(store),
		Brands:  NewBrandRepository(store),
		Events:  NewEventRepository(store),
	}
}
