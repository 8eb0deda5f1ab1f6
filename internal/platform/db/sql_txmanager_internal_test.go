package db

import (
	"database/sql"
	"testing"
)

func TestTxManagerOptions(t *testing.T) {
	t.Parallel()

	if opts := NewSQLTxManager(nil).opts; opts != nil {
		t.Errorf("NewSQLTxManager().opts = %+v, want: nil", opts)
	}

	opts := NewReadOnlyTxManager(nil).opts
	if opts == nil {
		t.Fatal("NewReadOnlyTxManager().opts = nil, want read-only repeatable read")
	}

	if opts.Isolation != sql.LevelRepeatableRead || !opts.ReadOnly {
		t.Errorf("NewReadOnlyTxManager().opts = %+v, want: {Isolation:%v ReadOnly:true}", opts, sql.LevelRepeatableRead)
	}
}
