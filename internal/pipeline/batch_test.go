package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
	"github.com/kurochkinivan/transcript_extractor/internal/pipeline"
	"github.com/kurochkinivan/transcript_extractor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uploads(n int) []domain.UploadedFile {
	files := make([]domain.UploadedFile, n)
	for i := range files {
		files[i] = domain.UploadedFile{
			Path: fmt.Sprintf("uploads/%d.pdf", i),
			Name: fmt.Sprintf("transcript-%d.pdf", i),
		}
	}

	return files
}

func TestBatch_ExtractAll(t *testing.T) {
	t.Parallel()

	files := uploads(5)

	processor := NewMockFileProcessor(t)
	for _, f := range files {
		processor.EXPECT().Run(mock.Anything, f).Return(&domain.Record{RollNo: str(f.Name)}, nil).Once()
	}

	results := store.NewResults()
	batch := pipeline.NewBatch(slog.New(slog.DiscardHandler), processor, results)

	records, err := batch.ExtractAll(t.Context(), files)
	require.NoError(t, err)

	require.Len(t, records, len(files))
	for i, f := range files {
		assert.Equal(t, f.Name, *records[i].RollNo)
	}

	assert.ElementsMatch(t, records, results.All())
}

func TestBatch_ExtractAll_Failure(t *testing.T) {
	t.Parallel()

	files := uploads(3)
	extractErr := &domain.ExtractionError{Filename: files[1].Name, Err: domain.ErrJob}

	processor := NewMockFileProcessor(t)
	processor.EXPECT().Run(mock.Anything, files[0]).Return(&domain.Record{}, nil).Once()
	processor.EXPECT().Run(mock.Anything, files[1]).Return(nil, extractErr).Once()
	processor.EXPECT().Run(mock.Anything, files[2]).Return(&domain.Record{}, nil).Once()

	results := store.NewResults()
	batch := pipeline.NewBatch(slog.New(slog.DiscardHandler), processor, results)

	records, err := batch.ExtractAll(t.Context(), files)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrJob))

	// successful files are still recorded
	assert.Len(t, results.All(), 2)
}

func TestBatch_ExtractAll_NoFiles(t *testing.T) {
	t.Parallel()

	results := store.NewResults()
	batch := pipeline.NewBatch(slog.New(slog.DiscardHandler), NewMockFileProcessor(t), results)

	records, err := batch.ExtractAll(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, results.All())
}

func TestBatch_ExtractAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	files := uploads(4)

	var started sync.WaitGroup
	started.Add(len(files))

	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	processor := NewMockFileProcessor(t)
	processor.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.UploadedFile) (*domain.Record, error) {
			started.Done()

			select {
			case <-allStarted:
				return &domain.Record{}, nil
			case <-time.After(time.Second):
				return nil, errors.New("other files did not start while this one was running")
			}
		}).
		Times(len(files))

	results := store.NewResults()
	batch := pipeline.NewBatch(slog.New(slog.DiscardHandler), processor, results)

	records, err := batch.ExtractAll(t.Context(), files)
	require.NoError(t, err)
	assert.Len(t, records, len(files))
	assert.Equal(t, len(files), results.Len())
}

func TestBatch_ExtractAll_FailureDoesNotCancelSiblings(t *testing.T) {
	t.Parallel()

	files := uploads(2)
	fast, slow := files[0], files[1]

	failed := make(chan struct{})
	release := make(chan struct{})

	processor := NewMockFileProcessor(t)
	processor.EXPECT().Run(mock.Anything, fast).
		RunAndReturn(func(context.Context, domain.UploadedFile) (*domain.Record, error) {
			defer close(failed)
			return nil, &domain.ExtractionError{Filename: fast.Name, Err: domain.ErrJob}
		}).
		Once()
	processor.EXPECT().Run(mock.Anything, slow).
		RunAndReturn(func(ctx context.Context, _ domain.UploadedFile) (*domain.Record, error) {
			<-release

			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return &domain.Record{RollNo: str("slow")}, nil
		}).
		Once()

	results := store.NewResults()
	batch := pipeline.NewBatch(slog.New(slog.DiscardHandler), processor, results)

	type outcome struct {
		records []*domain.Record
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		records, err := batch.ExtractAll(t.Context(), files)
		done <- outcome{records: records, err: err}
	}()

	select {
	case <-failed:
	case <-time.After(time.Second):
		t.Fatal("failing file was not processed")
	}

	select {
	case <-done:
		t.Fatal("batch returned before the slower file finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	var got outcome
	select {
	case got = <-done:
	case <-time.After(time.Second):
		t.Fatal("batch did not finish")
	}

	require.ErrorIs(t, got.err, domain.ErrJob)
	assert.Nil(t, got.records)

	all := results.All()
	require.Len(t, all, 1)
	assert.Equal(t, str("slow"), all[0].RollNo)
}
