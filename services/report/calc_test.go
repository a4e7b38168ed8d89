package report

import (
	"math"
	"testing"
	"time"

	"wolftracker/models"
	"wolftracker/services"
)

func date(value string) time.Time {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return day
}

func TestAge(t *testing.T) {
	cases := []struct {
		name     string
		birth    string
		today    string
		expected int
	}{
		{"birthday already passed", "1990-01-15", "2024-06-01", 34},
		{"birthday not yet", "1990-08-20", "2024-06-01", 33},
		{"birthday today", "1990-06-01", "2024-06-01", 34},
		{"day before birthday", "1990-06-02", "2024-06-01", 33},
	}
	for _, c := range cases {
		if got := Age(date(c.birth), date(c.today)); got != c.expected {
			t.Errorf("%s: expected %d, got %d", c.name, c.expected, got)
		}
	}
}

func TestLbsToKg(t *testing.T) {
	if got := LbsToKg(180); math.Abs(got-81.64656) > 0.0001 {
		t.Errorf("expected 81.64656, got %f", got)
	}
}

func TestCalculateBMRMale(t *testing.T) {
	profileEntity := models.UserProfile{
		HeightCm:   180,
		BirthDate:  "1990-01-15",
		SexAtBirth: "Male",
	}
	bmr, err := CalculateBMR(profileEntity, 180, date("2024-06-01"))
	if err != nil {
		t.Fatalf("bmr: %s", err)
	}
	if math.Abs(bmr-1776.47) > 0.01 {
		t.Errorf("expected 1776.47, got %f", bmr)
	}
}

func TestCalculateBMRFemale(t *testing.T) {
	profileEntity := models.UserProfile{
		HeightCm:   180,
		BirthDate:  "1990-01-15",
		SexAtBirth: "Female",
	}
	bmr, err := CalculateBMR(profileEntity, 135, date("2024-06-01"))
	if err != nil {
		t.Fatalf("bmr: %s", err)
	}
	if math.Abs(bmr-1406.35) > 0.01 {
		t.Errorf("expected 1406.35, got %f", bmr)
	}
}

func TestCalculateBMRUnknownSexFallsBackToMale(t *testing.T) {
	profileEntity := models.UserProfile{
		HeightCm:   180,
		BirthDate:  "1990-01-15",
		SexAtBirth: "Other",
	}
	bmr, err := CalculateBMR(profileEntity, 180, date("2024-06-01"))
	if err != nil {
		t.Fatalf("bmr: %s", err)
	}
	if math.Abs(bmr-1776.47) > 0.01 {
		t.Errorf("expected male formula result 1776.47, got %f", bmr)
	}
}

func TestCalculateBMRBadBirthDate(t *testing.T) {
	profileEntity := models.UserProfile{
		HeightCm:   180,
		BirthDate:  "not-a-date",
		SexAtBirth: "Male",
	}
	if _, err := CalculateBMR(profileEntity, 180, date("2024-06-01")); err == nil {
		t.Error("expected error for malformed birth date")
	}
}

func TestCalculateTDEE(t *testing.T) {
	tdee := CalculateTDEE(1776.47, 350)
	if math.Abs(tdee-2481.76) > 0.01 {
		t.Errorf("expected 2481.76, got %f", tdee)
	}
}

func TestDeficitSign(t *testing.T) {
	tdee := 2481.764

	// 吃得比消耗少是 deficit
	deficit := services.Round(tdee - 850)
	if deficit != 1632 {
		t.Errorf("expected deficit 1632, got %d", deficit)
	}

	// 吃超過就是 surplus，取絕對值呈現
	deficit = services.Round(tdee - 2700)
	if deficit >= 0 {
		t.Errorf("expected negative deficit, got %d", deficit)
	}
	if -deficit != 218 {
		t.Errorf("expected surplus 218, got %d", -deficit)
	}
}
