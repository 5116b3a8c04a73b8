// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildFindByUserQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildFindByUserQuery(userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from data_points")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	for _, col := range dataPointColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildFindByCategoryQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildFindByCategoryQuery(userID, "temperature")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, userID, args[0])
	require.Equal(t, "temperature", args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "from data_points")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "category")
	require.Contains(t, q, "order by created_at")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildFindByDateRangeQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildFindByDateRangeQuery(userID, start, end)
	require.NoError(t, err)

	// owner filter plus two inclusive bounds
	require.Len(t, args, 3)
	require.Equal(t, userID, args[0])
	require.Equal(t, start, args[1])
	require.Equal(t, end, args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "from data_points")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "created_at >= $2")
	require.Contains(t, q, "created_at <= $3")
	require.Contains(t, q, "order by created_at")
}
