package schema

// CalendarEntry represents the calendar_dimension table
// Densely populated reference data, looked up by (year, month, day) only
type CalendarEntry struct {
	DateID uint64 `gorm:"column:date_id;primaryKey;autoIncrement"`
	Year   int    `gorm:"column:year;not null;uniqueIndex:idx_calendar_ymd"`
	Month  int    `gorm:"column:month;not null;uniqueIndex:idx_calendar_ymd"`
	Day    int    `gorm:"column:day;not null;uniqueIndex:idx_calendar_ymd"`
}

// TableName specifies the table name for the CalendarEntry model
func (CalendarEntry) TableName() string {
	return "calendar_dimension"
}
