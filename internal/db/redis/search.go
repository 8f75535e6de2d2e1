package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/shoplane/searchd/internal/db"
)

// SearchText runs a BM25 full-text search via FT.SEARCH, ordered by relevance.
func (s *Store) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	queryStr := buildTextQuery(q.Query, q.Category)

	args := []string{q.IndexName, queryStr,
		"WITHSCORES",
		"LIMIT", "0", strconv.Itoa(q.Limit),
		"DIALECT", "2",
	}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "no such index") || isRedisErr(err, "unknown index name") {
			return nil, db.ErrIndexNotFound
		}
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw)
}

// buildTextQuery composes the FT.SEARCH query string: an optional category
// tag restriction followed by the escaped free-text terms.
func buildTextQuery(query, category string) string {
	terms := strings.Fields(query)
	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = escapeQuery(t)
	}
	textPart := "(" + strings.Join(escaped, " ") + ")"
	if category == "" {
		return textPart
	}
	return fmt.Sprintf("@category:{%s} %s", escapeQuery(category), textPart)
}

// parseSearchResult converts the RESP2 WITHSCORES reply.
// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Score:  score,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

// queryEscaper neutralizes FT.SEARCH query syntax characters in user input.
var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`+`, `\+`,
	`=`, `\=`,
	`:`, `\:`,
	`;`, `\;`,
	`,`, `\,`,
	`?`, `\?`,
	`/`, `\/`,
	`&`, `\&`,
	`#`, `\#`,
)
