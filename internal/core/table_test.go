package core

import (
	"reflect"
	"testing"
)

// newTextTable builds a table of present text cells from string records.
func newTextTable(columns []string, records ...[]string) Table {
	t := NewTable(columns...)
	for _, rec := range records {
		row := make(Row, len(columns))
		for i, c := range columns {
			row[c] = TextCell(rec[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestTable_Select(t *testing.T) {
	tbl := newTextTable([]string{"a", "b", "c"}, []string{"1", "2", "3"})

	got := tbl.Select("c", "missing", "a")

	if want := []string{"c", "a"}; !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("Columns = %v, want %v", got.Columns, want)
	}
	if want := [][]string{{"3", "1"}}; !reflect.DeepEqual(got.Values(), want) {
		t.Errorf("Values() = %v, want %v", got.Values(), want)
	}
	if _, ok := got.Rows[0]["b"]; ok {
		t.Error("projected row still holds column b")
	}
}

func TestTable_DedupeBy(t *testing.T) {
	tbl := newTextTable([]string{"id", "name"},
		[]string{"1", "A"},
		[]string{"2", "B"},
		[]string{"1", "A2"},
		[]string{"2", "B"},
	)

	t.Run("by column keeps first", func(t *testing.T) {
		got := tbl.DedupeBy("id")
		want := [][]string{{"1", "A"}, {"2", "B"}}
		if !reflect.DeepEqual(got.Values(), want) {
			t.Errorf("Values() = %v, want %v", got.Values(), want)
		}
	})

	t.Run("all columns", func(t *testing.T) {
		got := tbl.DedupeBy()
		want := [][]string{{"1", "A"}, {"2", "B"}, {"1", "A2"}}
		if !reflect.DeepEqual(got.Values(), want) {
			t.Errorf("Values() = %v, want %v", got.Values(), want)
		}
	})

	t.Run("missing values compare equal", func(t *testing.T) {
		m := NewTable("id")
		m.Rows = []Row{
			{"id": MissingCell(FieldNumeric)},
			{"id": MissingCell(FieldNumeric)},
			{"id": TextCell("1")},
		}
		if got := m.DedupeBy("id").Len(); got != 2 {
			t.Errorf("Len() = %d, want 2", got)
		}
	})

	t.Run("missing and empty text compare equal", func(t *testing.T) {
		m := NewTable("id", "stops")
		m.Rows = []Row{
			{"id": TextCell("1"), "stops": TextCell("")},
			{"id": TextCell("1"), "stops": MissingCell(FieldText)},
		}
		got := m.DedupeBy()
		if got.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", got.Len())
		}
		if !got.Rows[0]["stops"].Valid() {
			t.Error("kept row is not the first occurrence")
		}
	})

	t.Run("values containing separators do not collide", func(t *testing.T) {
		s := newTextTable([]string{"a", "b"},
			[]string{"x:1", "y"},
			[]string{"x", "1:y"},
		)
		if got := s.DedupeBy().Len(); got != 2 {
			t.Errorf("Len() = %d, want 2", got)
		}
	})
}

func TestTable_Rename(t *testing.T) {
	tbl := newTextTable([]string{"Airport ID", "Name"}, []string{"1", "Goroka"})

	got := tbl.Rename(NormalizeColumnName)

	if want := []string{"airport_id", "name"}; !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("Columns = %v, want %v", got.Columns, want)
	}
	if got.Rows[0]["airport_id"].String() != "1" {
		t.Errorf("airport_id = %q, want %q", got.Rows[0]["airport_id"].String(), "1")
	}
	if !tbl.Has("Airport ID") {
		t.Error("Rename modified the receiver")
	}
}

func TestTable_Map(t *testing.T) {
	tbl := newTextTable([]string{"lat"}, []string{"10.5"}, []string{"bad"})

	got := tbl.Map("lat", ToNumeric)

	if !got.Rows[0]["lat"].Valid() || got.Rows[1]["lat"].Valid() {
		t.Errorf("Map result validity = [%v %v], want [true false]",
			got.Rows[0]["lat"].Valid(), got.Rows[1]["lat"].Valid())
	}
	if tbl.Rows[0]["lat"].Type != FieldText {
		t.Error("Map modified the receiver")
	}

	same := tbl.Map("absent", ToNumeric)
	if !reflect.DeepEqual(same.Values(), tbl.Values()) {
		t.Error("Map on an absent column changed the table")
	}
}

func TestTable_DropMissing(t *testing.T) {
	tbl := NewTable("id", "lat")
	tbl.Rows = []Row{
		{"id": TextCell("1"), "lat": ToNumeric(TextCell("10.5"))},
		{"id": TextCell("2"), "lat": ToNumeric(TextCell("bad"))},
		{"id": TextCell(""), "lat": ToNumeric(TextCell("1"))},
	}

	t.Run("drops invalid", func(t *testing.T) {
		got := tbl.DropMissing("lat")
		if got.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", got.Len())
		}
		if got.Rows[1]["id"].String() != "" {
			t.Errorf("second row id = %q, want empty text row kept", got.Rows[1]["id"].String())
		}
	})

	t.Run("empty text is present", func(t *testing.T) {
		if got := tbl.DropMissing("id").Len(); got != 3 {
			t.Errorf("Len() = %d, want 3", got)
		}
	})

	t.Run("absent column drops every row", func(t *testing.T) {
		if got := tbl.DropMissing("absent").Len(); got != 0 {
			t.Errorf("Len() = %d, want 0", got)
		}
	})
}

func TestTable_Values_MissingEncodesEmpty(t *testing.T) {
	tbl := NewTable("id", "airline_id")
	tbl.Rows = []Row{
		{"id": ToInteger(TextCell("1")), "airline_id": MissingCell(FieldInteger)},
	}

	want := [][]string{{"1", ""}}
	if got := tbl.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}
