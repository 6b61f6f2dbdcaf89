package dto

type DeviceSessionOutput struct {
	IP             string `json:"ip"`
	Title          string `json:"title"`
	LastActiveDate string `json:"lastActiveDate"`
	DeviceID       string `json:"deviceId"`
}
