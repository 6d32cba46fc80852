package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
)

type SourceKind string

const (
	SourceFile      SourceKind = "file"
	SourceGCS       SourceKind = "gs"
	SourceFirestore SourceKind = "firestore"
)

// Source is a parsed PROGRAMS_SOURCE value.
type Source struct {
	Kind SourceKind
	// Path is set for SourceFile.
	Path string
	// Bucket/Object are set for SourceGCS.
	Bucket string
	Object string
	// Collection/Document are set for SourceFirestore.
	Collection string
	Document   string
}

// ParseSource accepts a bare path, file://path, gs://bucket/object or
// firestore://collection/document. An empty value selects defaultPath.
func ParseSource(raw, defaultPath string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Source{Kind: SourceFile, Path: defaultPath}, nil
	}
	if !strings.Contains(raw, "://") {
		return Source{Kind: SourceFile, Path: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Source{}, fmt.Errorf("parse programs source %q: %w", raw, err)
	}
	rest := strings.Trim(u.Path, "/")

	switch SourceKind(u.Scheme) {
	case SourceFile:
		path := u.Host + u.Path
		if path == "" {
			return Source{}, fmt.Errorf("programs source %q: empty path", raw)
		}
		return Source{Kind: SourceFile, Path: path}, nil
	case SourceGCS:
		if u.Host == "" || rest == "" {
			return Source{}, fmt.Errorf("programs source %q: want gs://bucket/object", raw)
		}
		return Source{Kind: SourceGCS, Bucket: u.Host, Object: rest}, nil
	case SourceFirestore:
		if u.Host == "" || rest == "" || strings.Contains(rest, "/") {
			return Source{}, fmt.Errorf("programs source %q: want firestore://collection/document", raw)
		}
		return Source{Kind: SourceFirestore, Collection: u.Host, Document: rest}, nil
	default:
		return Source{}, fmt.Errorf("programs source %q: unsupported scheme %q", raw, u.Scheme)
	}
}

// Open builds the repository for src. The returned close func releases any
// client the repository holds.
func Open(ctx context.Context, src Source, projectID string) (domain.ProgramRepository, func() error, error) {
	switch src.Kind {
	case SourceFile:
		return NewFileProgramRepository(src.Path), func() error { return nil }, nil
	case SourceGCS:
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("storage.NewClient: %w", err)
		}
		return NewGCSProgramRepository(client, src.Bucket, src.Object), client.Close, nil
	case SourceFirestore:
		if projectID == "" {
			return nil, nil, errors.New("PROJECT_ID is required for a firestore programs source")
		}
		client, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, nil, fmt.Errorf("firestore.NewClient: %w", err)
		}
		return NewFirestoreProgramRepository(client, src.Collection, src.Document), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown programs source kind %q", src.Kind)
}
