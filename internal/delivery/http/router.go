package http

import (
	"github.com/crewpool/pool-ledger-service/internal/delivery/http/handlers"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Member    *handlers.MemberHandler
	Week      *handlers.WeekHandler
	Bet       *handlers.BetHandler
	Promo     *handlers.PromoHandler
	Award     *handlers.AwardHandler
	Statement *handlers.StatementHandler
}

// NewRouter builds the gin engine with every ledger route mounted under
// /api/v1.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api/v1")

	members := api.Group("/members")
	{
		members.POST("", h.Member.CreateMember)
		members.GET("", h.Member.ListMembers)
		members.GET("/:id", h.Member.GetMember)
		members.PATCH("/:id", h.Member.RenameMember)
	}

	weeks := api.Group("/weeks")
	{
		weeks.POST("", h.Week.CreateWeek)
		weeks.GET("", h.Week.ListWeeks)
		weeks.GET("/:id", h.Week.GetWeek)
		weeks.POST("/:id/close", h.Week.CloseWeek)

		weeks.POST("/:id/members", h.Week.AddMember)
		weeks.GET("/:id/members", h.Week.ListWeekMembers)
		weeks.DELETE("/:id/members/:memberId", h.Week.RemoveMember)
		weeks.PUT("/:id/members/:memberId/credit-limit", h.Week.SetCreditLimit)
		weeks.GET("/:id/members/:memberId/credit", h.Week.GetCreditInfo)

		weeks.GET("/:id/bets", h.Bet.ListWeekBets)
		weeks.GET("/:id/promos", h.Promo.ListWeekPromos)
		weeks.GET("/:id/awards", h.Award.ListWeekAwards)
		weeks.GET("/:id/statements", h.Statement.ListWeekStatements)
		weeks.GET("/:id/summary", h.Statement.GetWeekSummary)
	}

	bets := api.Group("/bets")
	{
		bets.POST("", h.Bet.PlaceBet)
		bets.GET("/:id", h.Bet.GetBet)
		bets.PUT("/:id", h.Bet.EditBet)
		bets.POST("/:id/settle", h.Bet.SettleBet)
		bets.POST("/:id/quick-settle", h.Bet.QuickSettleBet)
		bets.POST("/:id/void", h.Bet.VoidBet)
	}

	promos := api.Group("/promos")
	{
		promos.POST("", h.Promo.CreatePromo)
		promos.GET("/:id", h.Promo.GetPromo)
		promos.PATCH("/:id", h.Promo.UpdatePromo)
		promos.PUT("/:id/active", h.Promo.SetPromoActive)
		promos.DELETE("/:id", h.Promo.DeletePromo)
		promos.GET("/:id/progress", h.Promo.GetPromoProgress)
	}

	awards := api.Group("/awards")
	{
		awards.POST("", h.Award.GrantManualAward)
		awards.GET("/:id", h.Award.GetAward)
		awards.POST("/:id/void", h.Award.VoidAward)
	}

	api.GET("/leaderboard", h.Statement.GetLeaderboard)

	return router
}
