// Package repository contains the data access contracts and their MongoDB
// implementations. Services depend on the interfaces, not on the driver,
// enabling clean unit testing via in-memory stubs.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Driver errors are translated to these sentinels at the repository boundary
// so services never import the mongo package.
var (
	ErrNotFound     = errors.New("documento no encontrado")
	ErrDuplicateKey = errors.New("clave duplicada")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return err
	}
}
