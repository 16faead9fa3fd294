package tripstore

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"engine.triper.app/internal/ledgercodec"
	"engine.triper.app/internal/logging"
)

func (c *Client) PrintSimpleSchema() error { // nolint:unused
	rows, err := c.DB.Query(`
		SELECT type, name, sql
		FROM sqlite_master
		WHERE type IN ('table', 'index')
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY type, name
	`)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(rows,
		slog.Default().With(slog.String("component", "debugging")),
		"database_rows")

	log.Println("DATABASE SCHEMA:")
	log.Println("----------------")

	for rows.Next() {
		var objType, objName, objSQL string
		if err := rows.Scan(&objType, &objName, &objSQL); err != nil {
			return err
		}
		log.Printf("%s: %s\n", strings.ToUpper(objType), objName)
		log.Printf("%s\n\n", objSQL)
	}

	return rows.Err()
}

// DumpRecord returns a human-readable dump of one cached record: the decoded
// trip when the buffer parses, otherwise the decode error plus a hex preview.
// Debugging aid only; never exposed through the API.
func (c *Client) DumpRecord(ctx context.Context, pubkey string) (string, error) {
	data, ok, err := c.GetRecord(ctx, pubkey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("record %s not cached", pubkey)
	}

	trip, err := ledgercodec.Decode(data)
	if err != nil {
		preview := data
		if len(preview) > 64 {
			preview = preview[:64]
		}
		return fmt.Sprintf("record %s failed to decode: %v\n%s", pubkey, err, spew.Sdump(preview)), nil
	}
	return spew.Sdump(trip), nil
}
