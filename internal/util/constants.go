package util

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
	FileStampDate  = "20060102"
	FileStampFull  = "20060102_150405"
)
