package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"army-catalog/core/storage"
	"army-catalog/feature/armory/models"

	"github.com/minio/minio-go/v7"
)

// MetadataReport describes the state of the metadata object in the bucket.
type MetadataReport struct {
	Present     bool   `json:"present"`
	Parsable    bool   `json:"parsable"`
	Error       string `json:"error,omitempty"`
	Factions    int    `json:"factions"`
	Weapons     int    `json:"weapons"`
	Skills      int    `json:"skills"`
	Equips      int    `json:"equips"`
	Ammunitions int    `json:"ammunitions"`
}

// CheckMetadata verifies that the metadata object exists and parses, and
// reports the table sizes it carries. Fetch and parse failures go into the
// report rather than the returned error; the error is reserved for the
// bucket itself being unreachable.
func CheckMetadata(ctx context.Context, client storage.Client, bucket, prefix string) (*MetadataReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &MetadataReport{}

	obj, err := client.GetObject(ctx, bucket, objectName(prefix, "metadata.json"), minio.GetObjectOptions{})
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	report.Present = true

	var meta models.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		report.Error = err.Error()
		return report, nil
	}

	report.Parsable = true
	report.Factions = len(meta.Factions)
	report.Weapons = len(meta.Weapons)
	report.Skills = len(meta.Skills)
	report.Equips = len(meta.Equips)
	report.Ammunitions = len(meta.Ammunitions)
	return report, nil
}

func objectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
