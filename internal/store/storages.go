package store

import "github.com/MKhiriev/go-pulse-keeper/internal/logger"

// Storages bundles every repository behind one constructor so the
// composition root wires a single value into the service layer. Instances
// are explicitly constructed and injected; no package-level singletons
// exist.
type Storages struct {
	UserRepository      UserRepository
	DataPointRepository DataPointRepository
}

// NewStorages constructs all repositories on top of the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		DataPointRepository: NewDataPointRepository(db, logger),
	}
}
