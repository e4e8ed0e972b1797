package pnrstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPnrNotFound is returned when no PNR record exists for the given ID.
var ErrPnrNotFound = errors.New("pnr not found")

// uuidBinarySubtype is the standard BSON UUID representation used by the
// PNR database.
const uuidBinarySubtype = 0x04

// Repository looks up PNR records in the PNR database.
type Repository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewRepository builds a repository around a collection with an explicit
// per-query timeout.
func NewRepository(collection *mongo.Collection, timeout time.Duration) *Repository {
	return &Repository{
		collection: collection,
		timeout:    timeout,
	}
}

type pnrDocument struct {
	ID      primitive.Binary `bson:"_id"`
	Contact struct {
		FirstName string `bson:"firstName"`
		Surname   string `bson:"surname"`
	} `bson:"contact"`
}

// FindValidationDetails fetches the projection of a PNR record needed to
// validate a login attempt.
func (r *Repository) FindValidationDetails(
	ctx context.Context,
	id uuid.UUID,
) (model.PnrValidationDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: primitive.Binary{
		Subtype: uuidBinarySubtype,
		Data:    id[:],
	}}}
	projection := bson.D{
		{Key: "_id", Value: 1},
		{Key: "contact.firstName", Value: 1},
		{Key: "contact.surname", Value: 1},
	}

	var document pnrDocument

	err := r.collection.FindOne(ctx, filter,
		options.FindOne().SetProjection(projection)).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		slog.InfoContext(ctx, "queried the PNR database successfully",
			slog.String("type", "query"),
			slog.String("pnr_id", id.String()),
			slog.Bool("found", false))

		return model.PnrValidationDetails{}, ErrPnrNotFound
	}

	if err != nil {
		return model.PnrValidationDetails{}, fmt.Errorf("find pnr: %w", err)
	}

	pnrID, err := uuid.FromBytes(document.ID.Data)
	if err != nil {
		return model.PnrValidationDetails{}, fmt.Errorf("decode pnr id: %w", err)
	}

	slog.InfoContext(ctx, "queried the PNR database successfully",
		slog.String("type", "query"),
		slog.String("pnr_id", pnrID.String()),
		slog.Bool("found", true))

	return model.PnrValidationDetails{
		ID: pnrID,
		Contact: model.ContactDetails{
			FirstName: document.Contact.FirstName,
			Surname:   document.Contact.Surname,
		},
	}, nil
}
