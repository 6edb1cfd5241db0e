package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/domain/dto"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/service"
)

// Defaults applied when a request omits the corresponding query parameter.
// Zero values fall back to 30 days and 25000 USD.
type Defaults struct {
	LookbackDays  int
	MonthlyVolume float64
}

// Handler provides HTTP handlers for the FX analytics endpoints.
//
// Responsibilities:
//   - Bind and validate incoming query parameters
//   - Delegate to the FX service
//   - Translate domain results into response DTOs
//   - Hand errors to middleware.ErrorHandler via c.Error()
type Handler struct {
	svc      service.FXService
	defaults Defaults
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.FXService): analytics service.
//   - defaults (Defaults): values used for omitted "days" and "usd_monthly".
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.FXService, defaults Defaults) *Handler {
	registerFormTagNames()
	if defaults.LookbackDays <= 0 {
		defaults.LookbackDays = 30
	}
	if defaults.MonthlyVolume <= 0 {
		defaults.MonthlyVolume = 25000
	}
	return &Handler{svc: svc, defaults: defaults}
}

type sourceSeriesQuery struct {
	Source string `form:"source"`
	Days   int    `form:"days" binding:"omitempty,min=1,max=365"`
}

// GetSourceSeries godoc
// @Summary      Source history
// @Description  Returns the buy/sell history of one source for the lookback window
// @Tags         fx
// @Produce      json
// @Param        source  query     string  false  "MONEX, Santander or DOF (case-insensitive)"  default(MONEX)
// @Param        days    query     int     false  "Lookback in days (1-365)"                    default(30)
// @Success      200     {object}  dto.SourceSeriesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse         "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/fx/source-series [get]
func (h *Handler) GetSourceSeries(c *gin.Context) {
	var q sourceSeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if q.Source == "" {
		q.Source = models.SourceMonex.String()
	}
	if q.Days == 0 {
		q.Days = h.defaults.LookbackDays
	}

	series, err := h.svc.SourceSeries(c.Request.Context(), q.Source, q.Days)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSourceSeriesResponse(series))
}

type compareQuery struct {
	Days       int     `form:"days" binding:"omitempty,min=1,max=365"`
	USDMonthly *float64 `form:"usd_monthly" binding:"omitempty,gt=0"`
	Field      string  `form:"field" binding:"omitempty,oneof=buy sell"`
}

// GetComparison godoc
// @Summary      Cross-source comparison
// @Description  Best buy/sell source, baseline, savings projection and per-source spread, trend and volatility
// @Tags         fx
// @Produce      json
// @Param        days         query     int     false  "Lookback in days (1-365)"              default(30)
// @Param        usd_monthly  query     number  false  "Monthly USD volume for the savings"    default(25000)
// @Param        field        query     string  false  "Rate used by trend and volatility"     Enums(buy, sell) default(sell)
// @Success      200          {object}  dto.ComparisonResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/fx/compare [get]
func (h *Handler) GetComparison(c *gin.Context) {
	var q compareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if q.Days == 0 {
		q.Days = h.defaults.LookbackDays
	}
	volume := h.defaults.MonthlyVolume
	if q.USDMonthly != nil {
		volume = *q.USDMonthly
	}

	snap, err := h.svc.Compare(c.Request.Context(), models.CompareQuery{
		LookbackDays:  q.Days,
		MonthlyVolume: volume,
		Field:         models.Field(q.Field),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewComparisonResponse(snap))
}

type hourlyQuery struct {
	Days     int      `form:"days" binding:"omitempty,min=1,max=7"`
	RateType string   `form:"rate_type" binding:"omitempty,oneof=buy sell"`
	Sources  []string `form:"sources"`
}

// GetHourlyRates godoc
// @Summary      Hourly rates
// @Description  Last value per source and hour over the last days×24 hours
// @Tags         rates
// @Produce      json
// @Param        days       query     int       false  "Window in days (1-7)"          default(1)
// @Param        rate_type  query     string    false  "Rate side"                     Enums(buy, sell) default(buy)
// @Param        sources    query     []string  false  "Source filter (repeatable or comma separated)"  collectionFormat(multi)
// @Success      200        {array}   dto.BucketResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500        {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/fx/rates/hourly [get]
func (h *Handler) GetHourlyRates(c *gin.Context) {
	var q hourlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	buckets, err := h.svc.Hourly(c.Request.Context(), models.HourlyQuery{
		Days:    q.Days,
		Field:   models.Field(q.RateType),
		Sources: q.Sources,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBucketResponses(buckets))
}

type rangeQuery struct {
	StartDate string   `form:"start_date"`
	EndDate   string   `form:"end_date"`
	Interval  string   `form:"interval" binding:"omitempty,oneof=hour day month"`
	RateType  string   `form:"rate_type" binding:"omitempty,oneof=buy sell"`
	Sources   []string `form:"sources"`
}

// GetRangeRates godoc
// @Summary      Rates for a date range
// @Description  Buckets quotes between two dates; hour buckets keep the last value, day and month buckets the mean
// @Tags         rates
// @Produce      json
// @Param        start_date  query     string    true   "Start date (YYYY-MM-DD)"  example(2025-01-01)
// @Param        end_date    query     string    true   "End date (YYYY-MM-DD)"    example(2025-01-07)
// @Param        interval    query     string    false  "Bucket size"              Enums(hour, day, month) default(day)
// @Param        rate_type   query     string    false  "Rate side"                Enums(buy, sell) default(buy)
// @Param        sources     query     []string  false  "Source filter (repeatable or comma separated)"  collectionFormat(multi)
// @Success      200         {array}   dto.BucketResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/fx/rates/range [get]
func (h *Handler) GetRangeRates(c *gin.Context) {
	var q rangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	buckets, err := h.svc.Range(c.Request.Context(), models.RangeQuery{
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		Field:       models.Field(q.RateType),
		Granularity: models.Granularity(q.Interval),
		Sources:     q.Sources,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBucketResponses(buckets))
}

type monthlyQuery struct {
	Year     int      `form:"year" binding:"omitempty,min=1900,max=2100"`
	Month    int      `form:"month" binding:"omitempty,min=1,max=12"`
	Months   int      `form:"months" binding:"omitempty,min=1,max=12"`
	RateType string   `form:"rate_type" binding:"omitempty,oneof=buy sell"`
	Sources  []string `form:"sources"`
}

// GetMonthlyRates godoc
// @Summary      Daily means for whole months
// @Description  Daily mean per source for one or more calendar months
// @Tags         rates
// @Produce      json
// @Param        year       query     int       false  "Year (defaults to the current year)"
// @Param        month      query     int       false  "First month (1-12, defaults to the current month)"
// @Param        months     query     int       false  "Number of months (1-12)"  default(1)
// @Param        rate_type  query     string    false  "Rate side"                Enums(buy, sell) default(buy)
// @Param        sources    query     []string  false  "Source filter (repeatable or comma separated)"  collectionFormat(multi)
// @Success      200        {array}   dto.BucketResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500        {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/fx/rates/monthly [get]
func (h *Handler) GetMonthlyRates(c *gin.Context) {
	var q monthlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	buckets, err := h.svc.Monthly(c.Request.Context(), models.MonthlyQuery{
		Year:    q.Year,
		Month:   q.Month,
		Months:  q.Months,
		Field:   models.Field(q.RateType),
		Sources: q.Sources,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBucketResponses(buckets))
}

type statsQuery struct {
	StartDate string   `form:"start_date"`
	EndDate   string   `form:"end_date"`
	RateType  string   `form:"rate_type" binding:"omitempty,oneof=buy sell"`
	Sources   []string `form:"sources"`
}

// GetRateStats godoc
// @Summary      Range statistics
// @Description  Average, min, max, volatility and direction per source over a date range
// @Tags         rates
// @Produce      json
// @Param        start_date  query     string    true   "Start date (YYYY-MM-DD)"  example(2025-01-01)
// @Param        end_date    query     string    true   "End date (YYYY-MM-DD)"    example(2025-01-31)
// @Param        rate_type   query     string    false  "Rate side"                Enums(buy, sell) default(buy)
// @Param        sources     query     []string  false  "Source filter (repeatable or comma separated)"  collectionFormat(multi)
// @Success      200         {array}   dto.SourceStatsResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/fx/rates/stats [get]
func (h *Handler) GetRateStats(c *gin.Context) {
	var q statsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), models.StatsQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Field:     models.Field(q.RateType),
		Sources:   q.Sources,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSourceStatsResponses(stats))
}
