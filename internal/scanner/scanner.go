package scanner

import (
	"database/sql"

	model "github.com/kampaw333/Atlas-Osiagniec/internal/models"
	"github.com/kampaw333/Atlas-Osiagniec/internal/utils"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanEuropePeak scanne une ligne de peaks_europe vers un Peak.
// Colonnes attendues : id, name, country, height_m, latitude, longitude
func ScanEuropePeak(row rowScanner) (*model.Peak, error) {
	var p model.Peak
	var country sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(&p.ID, &p.Name, &country, &p.HeightM, &latitude, &longitude)
	if err != nil {
		return nil, err
	}

	p.Country = utils.NullStringToString(country)
	p.Latitude = utils.NullFloat64ToPointer(latitude)
	p.Longitude = utils.NullFloat64ToPointer(longitude)

	return &p, nil
}

// ScanPolandPeak scanne une ligne de peaks_poland vers un Peak.
// Colonnes attendues : id, name, mountain_range, height_m, latitude, longitude
func ScanPolandPeak(row rowScanner) (*model.Peak, error) {
	var p model.Peak
	var mountainRange sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(&p.ID, &p.Name, &mountainRange, &p.HeightM, &latitude, &longitude)
	if err != nil {
		return nil, err
	}

	p.MountainRange = utils.NullStringToString(mountainRange)
	p.Latitude = utils.NullFloat64ToPointer(latitude)
	p.Longitude = utils.NullFloat64ToPointer(longitude)

	return &p, nil
}

// ScanAchievement scanne une ligne de achievements vers un Achievement.
// Colonnes attendues : id, user_id, category, peak_europe_id, peak_poland_id,
// name, custom_name, location, date, notes, distance, time, race_type, place,
// created_at
func ScanAchievement(row rowScanner) (*model.Achievement, error) {
	var a model.Achievement
	var peakEuropeID, peakPolandID, name, customName, location sql.NullString
	var notes, elapsed, raceType sql.NullString
	var distance sql.NullFloat64
	var place sql.NullInt64

	err := row.Scan(
		&a.ID, &a.UserID, &a.Category, &peakEuropeID, &peakPolandID,
		&name, &customName, &location, &a.Date, &notes,
		&distance, &elapsed, &raceType, &place, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.PeakEuropeID = utils.NullStringToPointer(peakEuropeID)
	a.PeakPolandID = utils.NullStringToPointer(peakPolandID)
	a.Name = utils.NullStringToString(name)
	a.CustomName = utils.NullStringToPointer(customName)
	a.Location = utils.NullStringToString(location)
	a.Notes = utils.NullStringToPointer(notes)
	a.Distance = utils.NullFloat64ToPointer(distance)
	a.Time = utils.NullStringToPointer(elapsed)
	a.RaceType = utils.NullStringToPointer(raceType)
	a.Place = utils.NullInt64ToPointer(place)

	return &a, nil
}

// ScanUserProfile scanne une ligne de users vers un UserProfile
func ScanUserProfile(row rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var fullName sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &fullName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.FullName = utils.NullStringToString(fullName)

	return &user, nil
}
