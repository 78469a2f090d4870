package bootstrap

import (
	"petpromise/internal/infra/payment"
	"petpromise/internal/pkg/config"
	"petpromise/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		func(cfg config.Config) commands.PaymentService {
			return payment.NewStripeClient(cfg.Payment)
		},
	),
)
