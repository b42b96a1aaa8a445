package dto

// DateLayout is the wire format for calendar dates in requests.
const DateLayout = "2006-01-02"
