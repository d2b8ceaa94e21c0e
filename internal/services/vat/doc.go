/*
Package vat computes the net payout of a transaction after fees and VAT.

Compute is the engine. It is a pure function of the country config and three
numbers and is safe to call from any goroutine:

	variableFee = amount × percentFee/100   (percentFee clamped to [0,100])
	totalFee    = flatFee + variableFee
	vatBase     = totalFee × base
	vatAmount   = vatBase × rate
	netReceipt  = amount − totalFee − vatAmount

Nothing is rounded; display rounding lives in the format package.

Service wraps Compute for callers that start from a country code:

	svc := vat.NewService(models.DefaultRegistry(), metrics, log)
	res, err := svc.Calculate(ctx, vat.CalculationRequest{
	    Country:    "ID",
	    Amount:     160000,
	    FlatFee:    1600,
	    PercentFee: 2,
	})

Error Handling:

Compute never fails. Service returns:
- models.ErrUnknownCountry: the code is not in the registry
- *ValidationError wrapping ErrInvalidAmount, ErrInvalidFlatFee or
  ErrInvalidPercentFee: amount or flat fee negative or not finite, percent fee
  not finite
*/
package vat
