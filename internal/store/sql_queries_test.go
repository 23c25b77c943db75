// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-auth/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	hash := "$2a$10$hash"
	now := time.Now().UTC()
	user := models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", HashedPassword: &hash, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name        string
		placeholder sq.PlaceholderFormat
		wantMarker  string
	}{
		{name: "postgres", placeholder: sq.Dollar, wantMarker: "$6"},
		{name: "sqlite", placeholder: sq.Question, wantMarker: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUserQuery(sq.StatementBuilder.PlaceholderFormat(tt.placeholder), user)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "insert into users")
			for _, c := range userColumns {
				assert.Contains(t, q, c)
			}
			assert.Contains(t, query, tt.wantMarker)

			require.Len(t, args, 6)
			assert.Equal(t, "u1", args[0])
			assert.Equal(t, "ann@example.com", args[2])
			assert.Equal(t, &hash, args[3])
		})
	}
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "ann@example.com")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select id, name, email, hashed_password, created_at, updated_at")
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where email = $1")
	assert.Contains(t, q, "limit 1")
	assert.Equal(t, []any{"ann@example.com"}, args)
}
