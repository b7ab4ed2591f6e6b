package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tabler interface {
	TableName() string
}

func TestModels_TableNames(t *testing.T) {
	var names []string
	for _, m := range Models() {
		tn, ok := m.(tabler)
		if assert.True(t, ok, "%T has no TableName", m) {
			names = append(names, tn.TableName())
		}
	}

	assert.Equal(t, []string{
		"workers",
		"jobs",
		"day_assignments",
		"payroll_snapshots",
		"user_profiles",
		"outbox_events",
	}, names)
}
