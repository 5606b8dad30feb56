package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AttendanceActions counts clock-in/clock-out/leave submissions by outcome.
var AttendanceActions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "presensi_attendance_actions_total",
		Help: "Attendance actions processed, labelled by action and result.",
	},
	[]string{"action", "result"},
)

// ActivityFeedRequests counts combined activity feed fetches.
var ActivityFeedRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "presensi_activity_feed_requests_total",
		Help: "Combined activity feed requests, labelled by result.",
	},
	[]string{"result"},
)
