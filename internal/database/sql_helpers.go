package database

import "time"

// toUnix stores timestamps as whole UTC seconds.
func toUnix(t time.Time) int64 {
	return t.UTC().Unix()
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
