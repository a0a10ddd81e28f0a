package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gridironlab/coachnet/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("Then construction registers every metric exactly once", func() {
			So(func() { metrics.NewManager(metrics.WithRegistry(reg)) }, ShouldNotPanic)

			families, err := reg.Gather()
			So(err, ShouldBeNil)
			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["coachnet_pipeline_staff_records_ingested_total"], ShouldBeTrue)
			So(names["coachnet_pipeline_graph_nodes"], ShouldBeTrue)
			So(names["coachnet_pipeline_recommendation_runs_completed_total"], ShouldBeTrue)
		})

		Convey("Then a second manager on the same registry panics on duplicates", func() {
			metrics.NewManager(metrics.WithRegistry(reg))
			So(func() { metrics.NewManager(metrics.WithRegistry(reg)) }, ShouldPanic)
		})
	})

	Convey("Given custom namespace and subsystem", t, func() {
		reg := prometheus.NewRegistry()
		metrics.NewManager(
			metrics.WithRegistry(reg),
			metrics.WithNamespace("custom"),
			metrics.WithSubsystem("engine"),
		)

		families, err := reg.Gather()
		So(err, ShouldBeNil)

		Convey("Then metric names carry the overrides", func() {
			found := false
			for _, f := range families {
				if f.GetName() == "custom_engine_files_ingested_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then every helper records without panicking", func() {
			So(func() {
				metrics.RecordRecordsIngested(10)
				metrics.RecordFileIngested()
				metrics.RecordFileSkipped()
				metrics.UpdateGraphNodes(42)
				metrics.UpdateGraphEdges(99)
				metrics.RecordRunCompleted()
				metrics.RecordRunFailed()
				metrics.RecordCandidateScored()
				metrics.RecordPositionFilled()
				metrics.RecordPositionUnfilled()
				metrics.ObserveStageDuration("graph", 0.25)
			}, ShouldNotPanic)
		})

		Convey("Then the engine registry gathers them", func() {
			families, err := metrics.Registry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
