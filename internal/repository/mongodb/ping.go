package mongodb

import (
	"context"

	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type pinger struct{ client *mongo.Client }

// NewPinger adapts the driver client to the repository.Pinger interface.
func NewPinger(client *mongo.Client) repository.Pinger { return &pinger{client: client} }

func (p *pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
