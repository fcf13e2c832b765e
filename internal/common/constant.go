package common

// StatusTrailerName is the gRPC trailer key carrying the numeric status of a
// failed call (400, 401 or 500).
const StatusTrailerName = "rpc-status"
