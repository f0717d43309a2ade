// Package export copies a user's score ledger to S3-compatible object storage.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/dmitrijs2005/gophmarks/internal/workspace"
)

// ObjectPutter is the part of *s3.Client the exporter needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Exporter struct {
	ws     *workspace.Workspace
	client ObjectPutter
	bucket string
	logger logging.Logger
}

// NewExporter returns an exporter writing to bucket. An empty bucket or a nil
// client yields an exporter whose Export always reports common.ErrExportDisabled.
func NewExporter(ws *workspace.Workspace, client ObjectPutter, bucket string, logger logging.Logger) *Exporter {
	return &Exporter{ws: ws, client: client, bucket: bucket, logger: logger}
}

func (e *Exporter) Enabled() bool {
	return e.bucket != "" && e.client != nil
}

// ObjectKey is where the ledger of username lands in the bucket.
func ObjectKey(username string) string {
	return path.Join(username, username+workspace.LedgerExt)
}

// Export uploads the ledger file as is and returns the object key.
func (e *Exporter) Export(ctx context.Context, username string) (string, error) {
	if !e.Enabled() {
		return "", common.ErrExportDisabled
	}

	p, err := e.ws.LedgerPath(username)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", common.ErrMissingLedger, username)
		}
		return "", fmt.Errorf("read ledger %s: %w", p, err)
	}

	key := ObjectKey(username)
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", e.bucket, key, err)
	}

	e.logger.Info(ctx, "ledger exported", "user", username, "bucket", e.bucket, "key", key, "bytes", len(data))
	return key, nil
}
