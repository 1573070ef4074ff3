package sqlmap

import (
	"reflect"
	"testing"
)

const target = "http://example.com/item.php?id=1"

func TestDatabasesArgs(t *testing.T) {
	got := DatabasesArgs(target, nil)
	want := []string{"-u", target, "--batch", "--dbs", "--disable-color"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DatabasesArgs() = %v, want %v", got, want)
	}
}

func TestTablesArgs(t *testing.T) {
	got := TablesArgs(target, "acuart", nil)
	want := []string{"-u", target, "-D", "acuart", "--batch", "--tables"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TablesArgs() = %v, want %v", got, want)
	}
}

func TestColumnsArgs(t *testing.T) {
	got := ColumnsArgs(target, "acuart", "users", nil)
	want := []string{"-u", target, "-D", "acuart", "-T", "users", "--batch", "--columns"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnsArgs() = %v, want %v", got, want)
	}
}

func TestArgs_ExtraAppended(t *testing.T) {
	extra := []string{"--level", "3", "--random-agent"}

	got := TablesArgs(target, "acuart", extra)
	want := []string{"-u", target, "-D", "acuart", "--batch", "--tables", "--level", "3", "--random-agent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TablesArgs() = %v, want %v", got, want)
	}
}

// TestArgs_HostileNamesStayDiscrete verifies names with shell metacharacters
// remain single argv elements instead of being interpreted.
func TestArgs_HostileNamesStayDiscrete(t *testing.T) {
	db := "acuart; rm -rf /"
	table := "users`id`"

	got := ColumnsArgs(target, db, table, nil)
	want := []string{"-u", target, "-D", db, "-T", table, "--batch", "--columns"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnsArgs() = %v, want %v", got, want)
	}
}
