package tickets

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	mg "checklist_export/internal/config/connections/mongo"
)

const TicketsCollection = "tickets"

// Repo reads the raw ticket documents. Records are returned as loose
// key/value mappings; the checklist normalizer owns all typing and
// coercion, so nothing is decoded into structs here.
type Repo struct {
	mg *mg.Mongo
}

func NewRepo(m *mg.Mongo) *Repo {
	return &Repo{mg: m}
}

// FetchAll streams the whole tickets collection into memory. Period
// filtering happens client-side against the parsed emissao, since stored
// dates are free-form strings.
func (r *Repo) FetchAll(ctx context.Context) ([]map[string]any, error) {
	if r.mg == nil || r.mg.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}

	cur, err := r.mg.Database.Collection(TicketsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("tickets find: %w", err)
	}
	defer cur.Close(ctx)

	docs := make([]map[string]any, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			log.Printf("[TICKETS][WARN] decode doc: %v", err)
			continue
		}
		docs = append(docs, map[string]any(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("tickets cursor: %w", err)
	}

	log.Printf("[TICKETS][OK] fetched=%d", len(docs))
	return docs, nil
}
