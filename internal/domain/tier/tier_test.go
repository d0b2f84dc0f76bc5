package tier_test

import (
	"context"
	"testing"

	tier "github.com/adrata/monaco/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStaticResolver_Resolve(t *testing.T) {
	Convey("Given the static tier resolver", t, func() {
		ctx := context.Background()
		r := tier.NewStaticResolver()

		Convey("When resolving by employee count", func() {
			for _, tc := range []struct {
				employees int
				want      tier.Tier
			}{
				{1000, tier.Enterprise},
				{5000, tier.Enterprise},
				{999, tier.MidMarket},
				{200, tier.MidMarket},
				{199, tier.SMB},
				{20, tier.SMB},
				{19, tier.Micro},
				{1, tier.Micro},
				{0, tier.Micro},
			} {
				got, err := r.Resolve(ctx, 0, tc.employees)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.want)
			}
		})

		Convey("When resolving by revenue", func() {
			for _, tc := range []struct {
				revenue float64
				want    tier.Tier
			}{
				{100_000_000, tier.Enterprise},
				{99_999_999, tier.MidMarket},
				{20_000_000, tier.MidMarket},
				{19_999_999, tier.SMB},
				{1_000_000, tier.SMB},
				{999_999, tier.Micro},
			} {
				got, err := r.Resolve(ctx, tc.revenue, 0)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.want)
			}
		})

		Convey("When the signals disagree, the higher tier wins", func() {
			got, err := r.Resolve(ctx, 150_000_000, 10)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tier.Enterprise)

			got, err = r.Resolve(ctx, 500, 3000)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tier.Enterprise)
		})

		Convey("When given negative inputs", func() {
			_, err := r.Resolve(ctx, -1, 100)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, tier.ErrNoTier.Error())

			_, err = r.Resolve(ctx, 100, -5)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStaticResolver_DealThresholds(t *testing.T) {
	Convey("Given the static threshold table", t, func() {
		ctx := context.Background()
		r := tier.NewStaticResolver()

		Convey("Then each tier maps to its threshold row", func() {
			th, err := r.DealThresholds(ctx, tier.Enterprise)
			So(err, ShouldBeNil)
			So(th, ShouldResemble, tier.Thresholds{VP: 250_000, Director: 100_000, Manager: 50_000})

			th, err = r.DealThresholds(ctx, tier.MidMarket)
			So(err, ShouldBeNil)
			So(th, ShouldResemble, tier.Thresholds{VP: 100_000, Director: 50_000, Manager: 25_000})

			th, err = r.DealThresholds(ctx, tier.SMB)
			So(err, ShouldBeNil)
			So(th, ShouldResemble, tier.Thresholds{VP: 50_000, Director: 25_000, Manager: 10_000})

			th, err = r.DealThresholds(ctx, tier.Micro)
			So(err, ShouldBeNil)
			So(th, ShouldResemble, tier.Thresholds{VP: 10_000, Director: 5_000, Manager: 2_500})
		})

		Convey("And thresholds shrink monotonically down the tiers", func() {
			order := []tier.Tier{tier.Enterprise, tier.MidMarket, tier.SMB, tier.Micro}
			for i := 1; i < len(order); i++ {
				hi, err := r.DealThresholds(ctx, order[i-1])
				So(err, ShouldBeNil)
				lo, err := r.DealThresholds(ctx, order[i])
				So(err, ShouldBeNil)
				So(lo.VP, ShouldBeLessThan, hi.VP)
				So(lo.Director, ShouldBeLessThan, hi.Director)
				So(lo.Manager, ShouldBeLessThan, hi.Manager)
			}
		})

		Convey("When asked about an unknown tier", func() {
			_, err := r.DealThresholds(ctx, tier.Tier("galactic"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStaticTargets(t *testing.T) {
	Convey("Given the static target provider", t, func() {
		ctx := context.Background()
		p := tier.NewStaticTargets()

		Convey("When the pool is small", func() {
			tg := p.Targets(ctx, tier.SMB, 4, 50, 20_000)
			So(tg.Decision, ShouldEqual, 1)
			So(tg.Champion, ShouldEqual, 1)
			So(tg.Stakeholder, ShouldEqual, 2)
			So(tg.Blocker, ShouldEqual, 1)
			So(tg.Introducer, ShouldEqual, 1)
		})

		Convey("When the pool is mid-sized", func() {
			tg := p.Targets(ctx, tier.MidMarket, 7, 300, 60_000)
			So(tg.Champion, ShouldEqual, 2)
			So(tg.Stakeholder, ShouldEqual, 3)
			So(tg.Decision, ShouldEqual, 1)
		})

		Convey("When the pool is large", func() {
			tg := p.Targets(ctx, tier.Enterprise, 25, 5000, 300_000)
			So(tg.Decision, ShouldEqual, 2)
			So(tg.Champion, ShouldEqual, 2)
			So(tg.Stakeholder, ShouldEqual, 4)
			So(tg.Introducer, ShouldEqual, 2)
		})

		Convey("When the deal is large enough to pull a second gatekeeper", func() {
			tg := p.Targets(ctx, tier.MidMarket, 8, 400, 200_000)
			So(tg.Blocker, ShouldEqual, 2)
		})

		Convey("When the company is a staffed enterprise", func() {
			tg := p.Targets(ctx, tier.Enterprise, 5, 2000, 100_000)
			So(tg.Blocker, ShouldEqual, 2)
		})

		Convey("When the pool cannot fill the stakeholder quota", func() {
			tg := p.Targets(ctx, tier.SMB, 1, 25, 15_000)
			So(tg.Stakeholder, ShouldEqual, 1)
		})
	})
}

func TestTargets_ForRole(t *testing.T) {
	Convey("Given a target set", t, func() {
		tg := tier.Targets{Decision: 2, Champion: 1, Stakeholder: 4, Blocker: 1, Introducer: 2}

		So(tg.ForRole("decision"), ShouldEqual, 2)
		So(tg.ForRole("champion"), ShouldEqual, 1)
		So(tg.ForRole("stakeholder"), ShouldEqual, 4)
		So(tg.ForRole("blocker"), ShouldEqual, 1)
		So(tg.ForRole("introducer"), ShouldEqual, 2)
		So(tg.ForRole("observer"), ShouldEqual, 0)
	})
}
