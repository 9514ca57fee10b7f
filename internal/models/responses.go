package models

// ClickResult is returned by the check-in state machine for an accepted click
type ClickResult struct {
	Checkin     *CheckIn       `json:"checkin"`
	ButtonClick *ButtonClick   `json:"buttonClick"`
	Completed   bool           `json:"completed"`
	Streak      *CheckinStreak `json:"streak"`
}

// TodayStatus summarizes the caller's check-in state for the current day
type TodayStatus struct {
	TodayCheckin     *CheckIn       `json:"todayCheckin"`
	Streak           *CheckinStreak `json:"streak"`
	CanCompleteToday bool           `json:"canCompleteToday"`
	NextRewardAt     int            `json:"nextRewardAt"`
}
