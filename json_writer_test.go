package ledgerdocs

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("document_id", "PO-J001").
		Append("amount", 42).
		Optional("ref_id", "").
		Optional("memo", "Supplies").
		Embed([]byte(`{"a":1,"b":2}`)).
		EmbedFrom(struct {
			C string `json:"c"`
		}{"x"})

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"document_id":"PO-J001","amount":42,"memo":"Supplies","a":1,"b":2,"c":"x"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s", got)
	}
}

func TestJsonObjectWriterKeyOrder(t *testing.T) {
	// Field order is the append order, part of the output contract.
	var w jsonObjectWriter
	w.Append("z", 1).Append("a", 2).Append("m", 3)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"z":1,"a":2,"m":3}` {
		t.Errorf("got %s", got)
	}
}
