package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	service "github.com/adrata/monaco/internal/app"
	"github.com/adrata/monaco/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func floatPtr(v float64) *float64 { return &v }

// midMarketRequest returns a request whose roster covers every role for a
// mid-market deal.
func midMarketRequest(companyName string) model.CompositionRequest {
	return model.CompositionRequest{
		CompanyName: companyName,
		Deal: model.Deal{
			DealSize:         75_000,
			CompanyRevenue:   40_000_000,
			CompanyEmployees: 300,
		},
		Candidates: []model.Candidate{
			{ID: "ceo", Title: "CEO", Scores: model.Scores{Overall: floatPtr(90)}},
			{
				ID: "champ", Title: "Director of Sales", Department: "Sales",
				Scores: model.Scores{ChampionPotential: floatPtr(20), Overall: floatPtr(80)},
			},
			{ID: "counsel", Title: "General Counsel", Scores: model.Scores{Overall: floatPtr(70)}},
			{
				ID: "ae", Title: "Account Executive", Department: "Sales",
				Scores: model.Scores{Influence: floatPtr(9), Overall: floatPtr(65)},
			},
			{ID: "eng", Title: "Software Engineer", Department: "Engineering", Scores: model.Scores{Overall: floatPtr(60)}},
			{ID: "fin", Title: "Financial Analyst", Department: "Finance", Scores: model.Scores{Overall: floatPtr(55)}},
		},
	}
}

// waitForResult polls the store until the job's result appears.
func waitForResult(ctx context.Context, svc *service.Service, jobID string) (model.CompositionResult, error) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		result, err := svc.Result(ctx, jobID)
		if err == nil {
			return result, nil
		}
		time.Sleep(20 * time.Millisecond)
	}
	return svc.Result(ctx, jobID)
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service with full integration", t, func() {
		svc := service.New(
			service.WithWorkerCount(2),
			service.WithQueueSize(1000),
			service.WithDedupeSize(500),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And the service should be running", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When composing synchronously", func() {
			err := svc.Start(ctx)
			So(err, ShouldBeNil)

			result, err := svc.Compose(ctx, midMarketRequest("Acme"))

			Convey("Then it should produce a complete result", func() {
				So(err, ShouldBeNil)
				So(result.CompanyName, ShouldEqual, "Acme")
				So(result.Tier, ShouldEqual, "midmarket")
				So(len(result.Group), ShouldBeGreaterThan, 0)
				So(result.Roster.TotalCandidates, ShouldEqual, 6)
			})

			Convey("And a decision maker should be present", func() {
				roles := make(map[model.Role]bool)
				for _, m := range result.Group {
					roles[m.Role] = true
					So(m.RoleConfidence, ShouldBeBetweenOrEqual, 0, 100)
					So(m.RoleReasoning, ShouldNotBeEmpty)
				}
				So(roles[model.RoleDecision], ShouldBeTrue)
			})

			Convey("And the distribution should match the group", func() {
				total := 0
				for _, count := range result.Distribution {
					total += count
				}
				So(total, ShouldEqual, len(result.Group))
			})
		})

		Convey("When processing jobs end-to-end", func() {
			err := svc.Start(ctx)
			So(err, ShouldBeNil)

			// Give service time to start
			time.Sleep(100 * time.Millisecond)

			Convey("And enqueueing multiple jobs", func() {
				jobs := []model.Job{
					{JobID: "job-1", Request: midMarketRequest("Acme")},
					{JobID: "job-2", Request: midMarketRequest("Globex")},
					{JobID: "job-3", Request: midMarketRequest("Initech")},
				}

				for _, job := range jobs {
					success := svc.Enqueue(ctx, job)
					So(success, ShouldBeTrue)
				}

				Convey("Then every job should produce a stored result", func() {
					for _, job := range jobs {
						result, err := waitForResult(ctx, svc, job.JobID)
						So(err, ShouldBeNil)
						So(result.JobID, ShouldEqual, job.JobID)
						So(result.CompanyName, ShouldEqual, job.Request.CompanyName)
						So(len(result.Group), ShouldBeGreaterThan, 0)
					}
				})

				Convey("And recent results should be available", func() {
					for _, job := range jobs {
						_, err := waitForResult(ctx, svc, job.JobID)
						So(err, ShouldBeNil)
					}

					recent, err := svc.Recent(ctx, 10)
					So(err, ShouldBeNil)
					So(len(recent), ShouldEqual, 3)
				})

				Convey("And duplicate request IDs should be detected", func() {
					So(svc.SeenAndRecord(ctx, "req-dup"), ShouldBeFalse)
					So(svc.SeenAndRecord(ctx, "req-dup"), ShouldBeTrue)
					So(svc.Size(), ShouldBeGreaterThan, 0)
				})
			})
		})
	})
}

func TestServiceConcurrency(t *testing.T) {
	Convey("Given a service with concurrent operations", t, func() {
		svc := service.New(
			service.WithWorkerCount(4),
			service.WithQueueSize(2000),
			service.WithDedupeSize(1000),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := svc.Start(ctx)
		So(err, ShouldBeNil)

		// Give service time to start
		time.Sleep(100 * time.Millisecond)

		Convey("When multiple goroutines enqueue jobs concurrently", func() {
			numGoroutines := 10
			jobsPerGoroutine := 20
			done := make(chan bool, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				go func(goroutineID int) {
					for j := 0; j < jobsPerGoroutine; j++ {
						job := model.Job{
							JobID:   fmt.Sprintf("concurrent-job-%d-%d", goroutineID, j),
							Request: midMarketRequest(fmt.Sprintf("company-%d-%d", goroutineID, j)),
						}
						svc.Enqueue(ctx, job)
					}
					done <- true
				}(i)
			}

			for i := 0; i < numGoroutines; i++ {
				<-done
			}

			Convey("Then all jobs should be processed", func() {
				for i := 0; i < numGoroutines; i++ {
					for j := 0; j < jobsPerGoroutine; j++ {
						jobID := fmt.Sprintf("concurrent-job-%d-%d", i, j)
						result, err := waitForResult(ctx, svc, jobID)
						So(err, ShouldBeNil)
						So(result.JobID, ShouldEqual, jobID)
					}
				}

				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When multiple goroutines compose concurrently", func() {
			numGoroutines := 20
			done := make(chan bool, numGoroutines)
			errs := make(chan error, numGoroutines*10)

			for i := 0; i < numGoroutines; i++ {
				go func(goroutineID int) {
					for j := 0; j < 10; j++ {
						result, err := svc.Compose(ctx, midMarketRequest(fmt.Sprintf("company-%d", goroutineID)))
						if err != nil {
							errs <- err
							continue
						}
						if len(result.Group) == 0 {
							errs <- fmt.Errorf("empty group")
							continue
						}
					}
					done <- true
				}(i)
			}

			for i := 0; i < numGoroutines; i++ {
				<-done
			}

			Convey("Then all compositions should succeed", func() {
				select {
				case err := <-errs:
					So(err, ShouldBeNil)
				default:
					So(true, ShouldBeTrue)
				}
			})
		})
	})
}

func TestServiceErrorHandling(t *testing.T) {
	Convey("Given a service with error conditions", t, func() {
		svc := service.New(
			service.WithWorkerCount(1),
			service.WithQueueSize(10),
			service.WithDedupeSize(5),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := svc.Start(ctx)
		So(err, ShouldBeNil)

		// Give service time to start
		time.Sleep(100 * time.Millisecond)

		Convey("When composing with negative deal figures", func() {
			req := midMarketRequest("Broken Co")
			req.Deal.DealSize = -1

			result, err := svc.Compose(ctx, req)

			Convey("Then it should return an error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "build engine")
				So(result.Group, ShouldBeNil)
			})
		})

		Convey("When querying a non-existent job", func() {
			result, err := svc.Result(ctx, "non-existent-job")

			Convey("Then it should return an error", func() {
				So(err, ShouldNotBeNil)
				So(result.JobID, ShouldEqual, "")
			})
		})

		Convey("When querying recent results with invalid limits", func() {
			results, err := svc.Recent(ctx, 0)

			Convey("Then it should return an error", func() {
				So(err, ShouldNotBeNil)
				So(results, ShouldBeNil)
			})
		})

		Convey("When querying recent results with negative limits", func() {
			results, err := svc.Recent(ctx, -1)

			Convey("Then it should return an error", func() {
				So(err, ShouldNotBeNil)
				So(results, ShouldBeNil)
			})
		})
	})
}
