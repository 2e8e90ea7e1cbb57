package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// storeMetrics holds the Prometheus counters for codec activity. They
// register against the default registry once at package init; embedding
// applications scrape them with their own handler.
type storeMetrics struct {
	filesOpened     prometheus.Counter
	filesCreated    prometheus.Counter
	recordsRead     prometheus.Counter
	recordsAppended prometheus.Counter
	blocksWritten   prometheus.Counter
	payloadBytes    prometheus.Counter
}

var metrics = &storeMetrics{
	filesOpened: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_files_opened_total",
		Help: "Total number of YXDB files opened for reading",
	}),
	filesCreated: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_files_created_total",
		Help: "Total number of YXDB files created for writing",
	}),
	recordsRead: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_records_read_total",
		Help: "Total number of records decoded",
	}),
	recordsAppended: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_records_appended_total",
		Help: "Total number of records appended to writers",
	}),
	blocksWritten: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_blocks_written_total",
		Help: "Total number of blocks emitted to block regions",
	}),
	payloadBytes: promauto.NewCounter(prometheus.CounterOpts{
		Name: "yxdb_payload_bytes_written_total",
		Help: "Total payload bytes framed into blocks",
	}),
}
