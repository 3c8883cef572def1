package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobvault/jobs-api/internal/config"
	"github.com/jobvault/jobs-api/internal/store"
	"github.com/jobvault/jobs-api/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertJobStm = "INSERT INTO jobs (id, company, position, status, job_type, owner_id, created_at, updated_at) VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s');"
)

func insertJob(db *gorm.DB, owner, company, position, status, jobType, createdAt string) string {
	id := uuid.NewString()
	tx := db.Exec(fmt.Sprintf(insertJobStm, id, company, position, status, jobType, owner, createdAt, createdAt))
	Expect(tx.Error).To(BeNil())
	return id
}

var _ = Describe("job store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = "sqlite"
		cfg.Database.Name = "file::memory:?cache=shared"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		_ = s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("list", func() {
		It("successfully lists only the owner's jobs", func() {
			insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "frontend dev", "pending", "full-time", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-2", "initech", "backend dev", "pending", "full-time", "2025-01-12 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
			for _, job := range jobs {
				Expect(job.OwnerID).To(Equal("owner-1"))
			}
		})

		It("lists no jobs for an unknown owner", func() {
			insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("nobody"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(0))
		})

		It("filters by position substring, case-insensitively", func() {
			insertJob(gormdb, "owner-1", "acme", "Software Engineer", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "senior engineer", "pending", "full-time", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-1", "initech", "product manager", "pending", "full-time", "2025-01-12 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1").ByPositionSearch("ENGINEER"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("treats LIKE metacharacters in the search term as literals", func() {
			insertJob(gormdb, "owner-1", "acme", "1003 manager", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "100% remote lead", "pending", "full-time", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-1", "initech", "sales_ops analyst", "pending", "full-time", "2025-01-12 10:00:00")
			insertJob(gormdb, "owner-1", "hooli", "salesxops analyst", "pending", "full-time", "2025-01-13 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1").ByPositionSearch("100%"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Position).To(Equal("100% remote lead"))

			jobs, err = s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1").ByPositionSearch("sales_ops"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Position).To(Equal("sales_ops analyst"))
		})

		It("filters by status and job type", func() {
			insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "frontend dev", "interview", "remote", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-1", "initech", "data engineer", "declined", "remote", "2025-01-12 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1").ByStatus("interview"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Company).To(Equal("globex"))

			jobs, err = s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1").ByJobType("remote"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("sorts by recency in both directions", func() {
			insertJob(gormdb, "owner-1", "acme", "first", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "second", "pending", "full-time", "2025-02-10 10:00:00")
			insertJob(gormdb, "owner-1", "initech", "third", "pending", "full-time", "2025-03-10 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"),
				store.NewJobQueryOptions().WithSortOrder(store.SortByNewest))
			Expect(err).To(BeNil())
			Expect(jobs[0].Position).To(Equal("third"))
			Expect(jobs[2].Position).To(Equal("first"))

			jobs, err = s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"),
				store.NewJobQueryOptions().WithSortOrder(store.SortByOldest))
			Expect(err).To(BeNil())
			Expect(jobs[0].Position).To(Equal("first"))
			Expect(jobs[2].Position).To(Equal("third"))
		})

		It("sorts by position alphabetically in both directions", func() {
			insertJob(gormdb, "owner-1", "acme", "analyst", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "globex", "zookeeper", "pending", "full-time", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-1", "initech", "machinist", "pending", "full-time", "2025-01-12 10:00:00")

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"),
				store.NewJobQueryOptions().WithSortOrder(store.SortByPositionAsc))
			Expect(err).To(BeNil())
			Expect(jobs[0].Position).To(Equal("analyst"))
			Expect(jobs[2].Position).To(Equal("zookeeper"))

			jobs, err = s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"),
				store.NewJobQueryOptions().WithSortOrder(store.SortByPositionDesc))
			Expect(err).To(BeNil())
			Expect(jobs[0].Position).To(Equal("zookeeper"))
			Expect(jobs[2].Position).To(Equal("analyst"))
		})

		It("windows the result with offset and limit", func() {
			for i := 1; i <= 5; i++ {
				insertJob(gormdb, "owner-1", "acme", fmt.Sprintf("position-%d", i), "pending", "full-time",
					fmt.Sprintf("2025-01-%02d 10:00:00", i))
			}

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"),
				store.NewJobQueryOptions().WithSortOrder(store.SortByOldest).WithOffset(2).WithLimit(2))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
			Expect(jobs[0].Position).To(Equal("position-3"))
			Expect(jobs[1].Position).To(Equal("position-4"))
		})
	})

	Context("count", func() {
		It("counts the filtered set independent of paging", func() {
			for i := 1; i <= 5; i++ {
				insertJob(gormdb, "owner-1", "acme", fmt.Sprintf("position-%d", i), "pending", "full-time",
					fmt.Sprintf("2025-01-%02d 10:00:00", i))
			}
			insertJob(gormdb, "owner-2", "globex", "position-x", "pending", "full-time", "2025-01-10 10:00:00")

			count, err := s.Job().Count(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(5)))
		})

		It("counts zero for an owner without jobs", func() {
			count, err := s.Job().Count(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(0)))
		})
	})

	Context("get", func() {
		It("successfully retrieves an owned job", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			job, err := s.Job().Get(context.TODO(), "owner-1", uuid.MustParse(id))
			Expect(err).To(BeNil())
			Expect(job.Company).To(Equal("acme"))
		})

		It("returns not found for another owner's job", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			_, err := s.Job().Get(context.TODO(), "owner-2", uuid.MustParse(id))
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("create", func() {
		It("successfully creates a job", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{
				ID:       uuid.New(),
				OwnerID:  "owner-1",
				Company:  "acme",
				Position: "backend dev",
				Status:   "pending",
				JobType:  "full-time",
			})
			Expect(err).To(BeNil())
			Expect(job.ID).NotTo(Equal(uuid.UUID{}))

			count, err := s.Job().Count(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(1)))
		})

		It("fails on a duplicate id", func() {
			job := model.Job{
				ID:       uuid.New(),
				OwnerID:  "owner-1",
				Company:  "acme",
				Position: "backend dev",
				Status:   "pending",
				JobType:  "full-time",
			}
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Job().Create(context.TODO(), job)
			Expect(err).ToNot(BeNil())
		})
	})

	Context("update", func() {
		It("updates only the supplied fields", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			status := "interview"
			job, err := s.Job().Update(context.TODO(), "owner-1", uuid.MustParse(id), model.JobPatch{Status: &status})
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal("interview"))
			Expect(job.Company).To(Equal("acme"))
			Expect(job.Position).To(Equal("backend dev"))
		})

		It("returns not found when the job belongs to another owner", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			status := "interview"
			_, err := s.Job().Update(context.TODO(), "owner-2", uuid.MustParse(id), model.JobPatch{Status: &status})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("deletes an owned job", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			Expect(s.Job().Delete(context.TODO(), "owner-1", uuid.MustParse(id))).To(Succeed())

			count, err := s.Job().Count(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(0)))
		})

		It("returns not found when the job belongs to another owner", func() {
			id := insertJob(gormdb, "owner-1", "acme", "backend dev", "pending", "full-time", "2025-01-10 10:00:00")

			err := s.Job().Delete(context.TODO(), "owner-2", uuid.MustParse(id))
			Expect(err).To(MatchError(store.ErrRecordNotFound))

			count, err := s.Job().Count(context.TODO(), store.NewJobQueryFilter().ByOwner("owner-1"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Context("count by status", func() {
		It("groups the owner's jobs by status", func() {
			insertJob(gormdb, "owner-1", "acme", "a", "pending", "full-time", "2025-01-10 10:00:00")
			insertJob(gormdb, "owner-1", "acme", "b", "pending", "full-time", "2025-01-11 10:00:00")
			insertJob(gormdb, "owner-1", "acme", "c", "interview", "full-time", "2025-01-12 10:00:00")
			insertJob(gormdb, "owner-2", "globex", "d", "declined", "full-time", "2025-01-13 10:00:00")

			counts, err := s.Job().CountByStatus(context.TODO(), "owner-1")
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(2))

			byStatus := map[string]int64{}
			for _, c := range counts {
				byStatus[c.Status] = c.Count
			}
			Expect(byStatus["pending"]).To(Equal(int64(2)))
			Expect(byStatus["interview"]).To(Equal(int64(1)))
		})
	})

	Context("count by month", func() {
		It("groups by calendar month, most recent first, capped", func() {
			months := []string{"01", "02", "03", "03", "07", "08", "08", "09", "10"}
			for i, m := range months {
				insertJob(gormdb, "owner-1", "acme", fmt.Sprintf("p-%d", i), "pending", "full-time",
					fmt.Sprintf("2025-%s-05 10:00:00", m))
			}

			counts, err := s.Job().CountByMonth(context.TODO(), "owner-1", 6)
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(6))

			// 7 distinct months exist; January, the oldest, falls off the cap.
			Expect(counts[0].Year).To(Equal(2025))
			Expect(counts[0].Month).To(Equal(10))
			Expect(counts[5].Month).To(Equal(2))
			Expect(counts[4].Month).To(Equal(3))
			Expect(counts[4].Count).To(Equal(int64(2)))

			for i := 1; i < len(counts); i++ {
				prev := counts[i-1].Year*12 + counts[i-1].Month
				cur := counts[i].Year*12 + counts[i].Month
				Expect(cur).To(BeNumerically("<", prev))
			}
		})

		It("spans year boundaries", func() {
			insertJob(gormdb, "owner-1", "acme", "a", "pending", "full-time", "2024-12-05 10:00:00")
			insertJob(gormdb, "owner-1", "acme", "b", "pending", "full-time", "2025-01-05 10:00:00")

			counts, err := s.Job().CountByMonth(context.TODO(), "owner-1", 6)
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(2))
			Expect(counts[0].Year).To(Equal(2025))
			Expect(counts[0].Month).To(Equal(1))
			Expect(counts[1].Year).To(Equal(2024))
			Expect(counts[1].Month).To(Equal(12))
		})

		It("returns an empty result for an owner without jobs", func() {
			counts, err := s.Job().CountByMonth(context.TODO(), "owner-1", 6)
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(0))
		})
	})
})
