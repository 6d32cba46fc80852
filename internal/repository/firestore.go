package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProgramRepository reads the "programs" field of a single
// document, e.g. programs/current.
type FirestoreProgramRepository struct {
	client     *firestore.Client
	collection string
	document   string
}

func NewFirestoreProgramRepository(client *firestore.Client, collection, document string) *FirestoreProgramRepository {
	return &FirestoreProgramRepository{
		client:     client,
		collection: collection,
		document:   document,
	}
}

func (r *FirestoreProgramRepository) Source() string {
	return "firestore://" + r.collection + "/" + r.document
}

func (r *FirestoreProgramRepository) LoadPrograms(ctx context.Context) (domain.ProgramList, error) {
	doc, err := r.client.Collection(r.collection).Doc(r.document).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s: %w", r.Source(), domain.ErrProgramStoreNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", r.Source(), err)
	}

	programs, err := programsFromDocument(doc.Data())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.Source(), err)
	}
	return programs, nil
}

// programsFromDocument mirrors DecodePrograms for an already decoded
// Firestore document.
func programsFromDocument(data map[string]any) (domain.ProgramList, error) {
	raw, ok := data["programs"]
	if !ok || raw == nil {
		return domain.ProgramList{}, nil
	}
	values, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: \"programs\" is not an array", domain.ErrInvalidDocument)
	}
	return domain.ProgramsFromValues(values), nil
}
