// Package ledger stores score submissions as one append-only CSV file per
// user. The header row lists the subjects in models.Subjects order and is
// written only when the file is created; rows are never rewritten.
package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/dmitrijs2005/gophmarks/internal/models"
	"github.com/dmitrijs2005/gophmarks/internal/workspace"
)

type Ledger struct {
	ws     *workspace.Workspace
	logger logging.Logger
}

func New(ws *workspace.Workspace, logger logging.Logger) *Ledger {
	return &Ledger{ws: ws, logger: logger}
}

func header() []string {
	h := make([]string, len(models.Subjects))
	for i, s := range models.Subjects {
		h[i] = string(s)
	}
	return h
}

// Append validates record and adds it as the last row of the user's ledger.
func (l *Ledger) Append(ctx context.Context, username string, record models.ScoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}

	if _, err := l.ws.Ensure(username); err != nil {
		return err
	}
	path, err := l.ws.LedgerPath(username)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(header()); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}

	row := make([]string, len(models.Subjects))
	for i, v := range record.Values() {
		row[i] = strconv.Itoa(v)
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}

	l.logger.Info(ctx, "marks appended", "user", username, "new_ledger", isNew)
	return nil
}

// Load returns every record in submission order. A user without a ledger
// file yields common.ErrMissingLedger.
func (l *Ledger) Load(ctx context.Context, username string) ([]models.ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.ws.LedgerPath(username)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingLedger, username)
		}
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	defer f.Close()

	return decode(f)
}

// Count returns the number of submissions, zero when no ledger exists.
func (l *Ledger) Count(ctx context.Context, username string) (int, error) {
	records, err := l.Load(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrMissingLedger) {
			return 0, nil
		}
		return 0, err
	}
	return len(records), nil
}

func decode(r io.Reader) ([]models.ScoreRecord, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.ScoreRecord{}, nil
		}
		return nil, fmt.Errorf("%w: header: %v", common.ErrMalformedLedger, err)
	}

	columns := make(map[models.Subject]int, len(head))
	for i, name := range head {
		columns[models.Subject(name)] = i
	}
	for _, s := range models.Subjects {
		if _, ok := columns[s]; !ok {
			return nil, fmt.Errorf("%w: header lacks %s", common.ErrMalformedLedger, s)
		}
	}

	records := []models.ScoreRecord{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrMalformedLedger, line, err)
		}

		rec := make(models.ScoreRecord, len(models.Subjects))
		for _, s := range models.Subjects {
			v, err := strconv.Atoi(row[columns[s]])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d %s: %v", common.ErrMalformedLedger, line, s, err)
			}
			rec[s] = v
		}
		records = append(records, rec)
	}

	return records, nil
}
