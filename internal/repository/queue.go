package repository

import (
	"context"
	"time"

	"affiliate_portal/internal/model"

	"github.com/pkg/errors"
)

type queueDocument struct {
	Queue []model.QueueEntry `json:"queue"`
}

func (r *Repository) loadQueue() (*queueDocument, error) {
	doc := &queueDocument{}
	if err := r.store.Load(queueCollection, doc); err != nil {
		return nil, errors.Wrap(err, "failed to load queue")
	}
	return doc, nil
}

// Enqueue appends a registrant to the waiting list. Emails already queued
// are left alone, so repeated calls cannot create duplicates.
func (r *Repository) Enqueue(ctx context.Context, email, referrer string) error {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	doc, err := r.loadQueue()
	if err != nil {
		return err
	}

	for _, entry := range doc.Queue {
		if entry.Email == email {
			return nil
		}
	}

	doc.Queue = append(doc.Queue, model.QueueEntry{
		Email:    email,
		Joined:   time.Now().UTC(),
		Referrer: referrer,
	})

	return errors.Wrap(r.store.Save(queueCollection, doc), "failed to save queue")
}

// QueuePosition returns the 1-based rank of an email in join order, or
// ErrNotFound when the email is not queued.
func (r *Repository) QueuePosition(ctx context.Context, email string) (int, error) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	doc, err := r.loadQueue()
	if err != nil {
		return 0, err
	}

	for i, entry := range doc.Queue {
		if entry.Email == email {
			return i + 1, nil
		}
	}
	return 0, ErrNotFound
}

// RemoveFromQueue deletes every entry for the email. Removing an absent
// email is a no-op; a removed email may rejoin later.
func (r *Repository) RemoveFromQueue(ctx context.Context, email string) error {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	doc, err := r.loadQueue()
	if err != nil {
		return err
	}

	remaining := doc.Queue[:0]
	for _, entry := range doc.Queue {
		if entry.Email != email {
			remaining = append(remaining, entry)
		}
	}
	doc.Queue = remaining

	return errors.Wrap(r.store.Save(queueCollection, doc), "failed to save queue")
}

func (r *Repository) GetQueue(ctx context.Context) ([]model.QueueEntry, error) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	doc, err := r.loadQueue()
	if err != nil {
		return nil, err
	}
	return doc.Queue, nil
}
