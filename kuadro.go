package kuadro

import (
	"database/sql"
	_ "embed"
	"net/url"

	"github.com/go-kit/log"

	"github.com/kuadroapp/kuadro/assets"
)

//go:embed schema.sql
var Schema string

// Service contains the core business logic separated from the transport layer.
// You can use it to back a REST, gRPC or GraphQL API.
type Service struct {
	Logger   log.Logger
	DB       *sql.DB
	Assets   assets.Host
	Origin   *url.URL
	TokenKey string

	// BcryptCost overrides the password hashing work factor.
	// Zero means bcrypt.DefaultCost. Tests lower it to the minimum.
	BcryptCost int
}
