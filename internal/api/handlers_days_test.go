package api

import (
	"net/http"
	"reflect"
	"strconv"
	"encoding/json"
	"testing"

	"github.com/terraincognita07/eczema-tracker/internal/models"
)

const fullDayPayload = `{
  "itchLevel": 7,
  "overallFeeling": 4,
  "symptoms": ["Itching", "Redness"],
  "bodyAreas": {"Face/Neck": 5, "Arms/Hands": 2},
  "dietChecklist": {"no_dairy": true, "water": false},
  "suhoorMeal": "oats",
  "iftarMeal": "lentil soup",
  "notes": "worse after lunch",
  "timestamp": "2024-03-04T21:15:00Z"
}`

func TestDayRoundTripForEveryProtocolDay(t *testing.T) {
	env := newTestEnv(t, "")

	for day := models.FirstProtocolDay; day <= models.LastProtocolDay; day++ {
		path := "/api/day/" + strconv.Itoa(day)
		response := env.postJSON(t, path, fullDayPayload)
		assertStatus(t, response, http.StatusOK)

		var entry models.DayEntry
		read := env.get(t, path)
		assertStatus(t, read, http.StatusOK)
		decodeJSON(t, read, &entry)

		if entry.ItchLevel == nil || *entry.ItchLevel != 7 || *entry.OverallFeeling != 4 {
			t.Fatalf("day %d: unexpected levels %#v", day, entry)
		}
		if !reflect.DeepEqual(entry.Symptoms, []string{"Itching", "Redness"}) {
			t.Fatalf("day %d: unexpected symptoms %v", day, entry.Symptoms)
		}
		if entry.BodyAreas["Face/Neck"] != 5 || entry.DietChecklist["no_dairy"] != true {
			t.Fatalf("day %d: unexpected maps %#v", day, entry)
		}
		if entry.Timestamp == nil || *entry.Timestamp != "2024-03-04T21:15:00Z" {
			t.Fatalf("day %d: unexpected timestamp %v", day, entry.Timestamp)
		}
	}
}

// clientDefaultEntry is what the browser client submits for an untouched day.
const clientDefaultEntry = `{"itchLevel":5,"overallFeeling":5,"symptoms":[],"bodyAreas":{},"dietChecklist":{},"suhoorMeal":"","iftarMeal":"","notes":"","photos":[],"timestamp":"2024-03-01T10:00:00.000Z"}`

const clientFilledEntry = `{"itchLevel":3,"overallFeeling":8,"symptoms":["Redness","Redness"],"bodyAreas":{"Legs/Feet":0,"Torso/Back":6},"dietChecklist":{"acv":true,"no_soy":false},"suhoorMeal":"dates","iftarMeal":"","notes":"ok","photos":["day-1-1709287200000.jpg"],"timestamp":"2024-03-01T10:00:00.120+01:00"}`

func TestDayEntryReadsBackExactlyAsSubmitted(t *testing.T) {
	backends := []struct {
		name string
		env  func(t *testing.T) testEnv
	}{
		{name: "json", env: func(t *testing.T) testEnv { return newTestEnv(t, "") }},
		{name: "sqlite", env: newSQLiteTestEnv},
	}
	payloads := []struct {
		name string
		body string
	}{
		{name: "client default", body: clientDefaultEntry},
		{name: "filled", body: clientFilledEntry},
	}

	for _, backend := range backends {
		for _, payload := range payloads {
			t.Run(backend.name+"/"+payload.name, func(t *testing.T) {
				env := backend.env(t)
				assertStatus(t, env.postJSON(t, "/api/day/1", payload.body), http.StatusOK)

				response := env.get(t, "/api/day/1")
				assertStatus(t, response, http.StatusOK)
				assertSameJSON(t, readBody(t, response), payload.body)
			})
		}
	}
}

func assertSameJSON(t *testing.T, got string, want string) {
	t.Helper()

	var gotValue, wantValue any
	if err := json.Unmarshal([]byte(got), &gotValue); err != nil {
		t.Fatalf("decode %q: %v", got, err)
	}
	if err := json.Unmarshal([]byte(want), &wantValue); err != nil {
		t.Fatalf("decode %q: %v", want, err)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Fatalf("read back %s, want %s", got, want)
	}
}

func TestGetDayNeverSavedReturnsNull(t *testing.T) {
	env := newTestEnv(t, "")

	response := env.get(t, "/api/day/9")
	assertStatus(t, response, http.StatusOK)
	if body := readBody(t, response); body != "null" {
		t.Fatalf("expected null body, got %q", body)
	}
}

func TestPutDayReplacesWithoutMerge(t *testing.T) {
	env := newTestEnv(t, "")

	assertStatus(t, env.postJSON(t, "/api/day/2", fullDayPayload), http.StatusOK)
	assertStatus(t, env.postJSON(t, "/api/day/2", `{"notes":"only notes"}`), http.StatusOK)

	entry := env.loadDocument(t).Days["2"]
	if entry.Notes != "only notes" {
		t.Fatalf("expected replaced notes, got %q", entry.Notes)
	}
	if entry.ItchLevel != nil || entry.Symptoms != nil || entry.Timestamp != nil {
		t.Fatalf("expected previous fields to be dropped, got %#v", entry)
	}
}

func TestDayKeyIsNormalized(t *testing.T) {
	env := newTestEnv(t, "")

	assertStatus(t, env.postJSON(t, "/api/day/03", `{"notes":"padded"}`), http.StatusOK)

	doc := env.loadDocument(t)
	if _, ok := doc.Days["03"]; ok {
		t.Fatal("expected padded key to be normalized")
	}
	if doc.Days["3"].Notes != "padded" {
		t.Fatalf("expected day 3 to hold the entry, got %#v", doc.Days)
	}
}

func TestDayEndpointsRejectInvalidDay(t *testing.T) {
	env := newTestEnv(t, "")

	for _, day := range []string{"0", "15", "-1", "abc", "1.5"} {
		assertAPIError(t, env.get(t, "/api/day/"+day), http.StatusBadRequest, "invalid day")
		assertAPIError(t, env.postJSON(t, "/api/day/"+day, `{}`), http.StatusBadRequest, "invalid day")
	}
	if doc := env.loadDocument(t); len(doc.Days) != 0 {
		t.Fatalf("expected no stored days, got %#v", doc.Days)
	}
}

func TestPutDayRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "itch above range", body: `{"itchLevel": 11}`},
		{name: "feeling below range", body: `{"overallFeeling": -3}`},
		{name: "severity above range", body: `{"bodyAreas": {"Face/Neck": 12}}`},
		{name: "empty body area label", body: `{"bodyAreas": {"": 2}}`},
		{name: "wrong type", body: `{"symptoms": "Itching"}`},
		{name: "bad timestamp", body: `{"timestamp": "yesterday"}`},
		{name: "timestamp without zone", body: `{"timestamp": "2024-03-01T10:00:00"}`},
		{name: "numeric timestamp", body: `{"timestamp": 1709287200000}`},
		{name: "broken json", body: `{"notes":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			assertAPIError(t, env.postJSON(t, "/api/day/1", tt.body), http.StatusBadRequest, "invalid payload")
		})
	}
}
