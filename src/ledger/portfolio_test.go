package ledger_test

import (
	"testing"

	"tracker/src/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAddPosition(t *testing.T) {
	t.Run("new symbol creates position", func(t *testing.T) {
		p := ledger.NewPortfolio("Growth")

		pos := p.AddPosition("AAPL", "Apple Inc.", dec("10"), dec("150"), dec("120"))
		require.NotNil(t, pos)

		assert.True(t, pos.Quantity.Equal(dec("10")))
		assert.True(t, pos.CurrentPrice.Equal(dec("150")))
		assert.True(t, pos.PurchasePrice.Equal(dec("120")))
		assert.False(t, pos.PurchaseDate.IsZero())
		assert.Same(t, pos, p.Position("AAPL"))
	})

	t.Run("merge computes weighted average purchase price", func(t *testing.T) {
		p := ledger.NewPortfolio("Growth")
		p.AddPosition("AAPL", "Apple Inc.", dec("10"), dec("150"), dec("80"))

		pos := p.AddPosition("AAPL", "Apple Inc.", dec("5"), dec("160"), dec("200"))

		// (10*80 + 5*200) / 15 = 1800/15 = 120
		assert.True(t, pos.Quantity.Equal(dec("15")))
		assert.True(t, pos.PurchasePrice.Equal(dec("120")), "got %s", pos.PurchasePrice)
		// current price is overwritten, never averaged
		assert.True(t, pos.CurrentPrice.Equal(dec("160")))
	})

	t.Run("merge with repeating decimal stays exact to division precision", func(t *testing.T) {
		p := ledger.NewPortfolio("Growth")
		p.AddPosition("INFY", "Infosys", dec("10"), dec("90"), dec("80"))

		pos := p.AddPosition("INFY", "Infosys", dec("5"), dec("90"), dec("200"))

		// (10*80 + 5*200) / 15 = 1800/15; with qty 15 and cost 1800 the result is exact
		assert.True(t, pos.PurchasePrice.Equal(dec("120")))

		// a genuinely repeating case: (1*1 + 2*2) / 3 = 5/3
		p2 := ledger.NewPortfolio("Odd")
		p2.AddPosition("X", "X", dec("1"), dec("0"), dec("1"))
		got := p2.AddPosition("X", "X", dec("2"), dec("0"), dec("2")).PurchasePrice
		want := dec("5").Div(dec("3"))
		assert.True(t, got.Equal(want), "got %s want %s", got, want)
	})

	t.Run("fractional quantities merge exactly", func(t *testing.T) {
		p := ledger.NewPortfolio("Crypto")
		p.AddPosition("BTC", "Bitcoin", dec("0.1"), dec("60000"), dec("30000"))

		pos := p.AddPosition("BTC", "Bitcoin", dec("0.3"), dec("61000"), dec("50000"))

		// (0.1*30000 + 0.3*50000) / 0.4 = 18000/0.4 = 45000
		assert.True(t, pos.Quantity.Equal(dec("0.4")))
		assert.True(t, pos.PurchasePrice.Equal(dec("45000")), "got %s", pos.PurchasePrice)
	})

	t.Run("net zero quantity resets purchase price to latest value", func(t *testing.T) {
		p := ledger.NewPortfolio("Flat")
		p.AddPosition("TSLA", "Tesla", dec("10"), dec("200"), dec("180"))

		pos := p.AddPosition("TSLA", "Tesla", dec("-10"), dec("210"), dec("50"))

		assert.True(t, pos.Quantity.IsZero())
		assert.True(t, pos.PurchasePrice.Equal(dec("50")))
	})

	t.Run("negative resulting quantity is permitted", func(t *testing.T) {
		p := ledger.NewPortfolio("Short")
		p.AddPosition("GME", "GameStop", dec("5"), dec("20"), dec("25"))

		pos := p.AddPosition("GME", "GameStop", dec("-8"), dec("20"), dec("25"))

		assert.True(t, pos.Quantity.Equal(dec("-3")))
	})
}

func TestRemovePosition(t *testing.T) {
	p := ledger.NewPortfolio("Growth")
	p.AddPosition("AAPL", "Apple Inc.", dec("10"), dec("150"), dec("120"))

	assert.False(t, p.RemovePosition("GOOGL"))
	assert.True(t, p.RemovePosition("AAPL"))
	assert.Nil(t, p.Position("AAPL"))
	assert.False(t, p.RemovePosition("AAPL"))
}

func TestPositionValuation(t *testing.T) {
	pos := &ledger.Position{
		Symbol:        "AAPL",
		Quantity:      dec("10"),
		CurrentPrice:  dec("150"),
		PurchasePrice: dec("120"),
	}

	assert.True(t, pos.CurrentValue().Equal(dec("1500")))
	assert.True(t, pos.CostBasis().Equal(dec("1200")))
	assert.True(t, pos.GainLoss().Equal(dec("300")))
	assert.True(t, pos.GainLossPercent().Equal(dec("25")))
}

func TestGainLossPercentZeroCostBasis(t *testing.T) {
	t.Run("zero purchase price", func(t *testing.T) {
		pos := &ledger.Position{Quantity: dec("10"), CurrentPrice: dec("150")}
		assert.True(t, pos.GainLossPercent().IsZero())
	})

	t.Run("zero quantity", func(t *testing.T) {
		pos := &ledger.Position{CurrentPrice: dec("150"), PurchasePrice: dec("120")}
		assert.True(t, pos.GainLossPercent().IsZero())
	})
}

func TestPortfolioTotals(t *testing.T) {
	p := ledger.NewPortfolio("Growth")
	p.AddPosition("AAPL", "Apple Inc.", dec("10"), dec("100"), dec("80"))
	p.AddPosition("GOOGL", "Alphabet", dec("5"), dec("200"), dec("150"))

	// 10*100 + 5*200
	assert.True(t, p.TotalValue().Equal(dec("2000")))
	// 10*80 + 5*150
	assert.True(t, p.TotalCostBasis().Equal(dec("1550")))
	assert.True(t, p.TotalGainLoss().Equal(dec("450")))

	// percent from aggregated totals: 450/1550*100
	want := dec("450").Div(dec("1550")).Mul(dec("100"))
	assert.True(t, p.TotalGainLossPercent().Equal(want))
}

func TestPortfolioTotalsEmpty(t *testing.T) {
	p := ledger.NewPortfolio("Empty")

	assert.True(t, p.TotalValue().IsZero())
	assert.True(t, p.TotalCostBasis().IsZero())
	assert.True(t, p.TotalGainLossPercent().IsZero())
}

func TestPositionsSorted(t *testing.T) {
	p := ledger.NewPortfolio("Growth")
	p.AddPosition("MSFT", "Microsoft", dec("1"), dec("1"), dec("1"))
	p.AddPosition("AAPL", "Apple Inc.", dec("1"), dec("1"), dec("1"))
	p.AddPosition("GOOGL", "Alphabet", dec("1"), dec("1"), dec("1"))

	var symbols []string
	for _, pos := range p.Positions() {
		symbols = append(symbols, pos.Symbol)
	}
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT"}, symbols)
}

func TestTracker(t *testing.T) {
	tr := ledger.NewTracker()

	growth := tr.CreatePortfolio("Growth")
	income := tr.CreatePortfolio("Income")
	require.NotNil(t, growth)
	require.NotNil(t, income)

	growth.AddPosition("AAPL", "Apple Inc.", dec("10"), dec("100"), dec("80"))
	income.AddPosition("KO", "Coca-Cola", dec("20"), dec("50"), dec("40"))

	assert.Same(t, growth, tr.Portfolio("Growth"))
	assert.Nil(t, tr.Portfolio("Missing"))
	assert.Len(t, tr.Portfolios(), 2)

	// 10*100 + 20*50
	assert.True(t, tr.TotalValue().Equal(dec("2000")))

	assert.True(t, tr.DeletePortfolio("Growth"))
	assert.False(t, tr.DeletePortfolio("Growth"))
	assert.Len(t, tr.Portfolios(), 1)
	assert.True(t, tr.TotalValue().Equal(dec("1000")))
}
