package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"laundry/internal/adapters/out/doku"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/whatsapp"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	paymentGateway *doku.Client
	whatsappClient *whatsapp.Client
	referral       *commands.ReferralRewardPipeline
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	paymentGateway, err := doku.NewClient(doku.Config{
		BaseURL:           config.DokuBaseURL,
		ClientID:          config.DokuClientID,
		SecretKey:         config.DokuSecretKey,
		LinkExpiryMinutes: config.DokuLinkExpiryMinutes,
	}, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create doku client: %w", err)
	}

	whatsappClient, err := whatsapp.NewClient(whatsapp.Config{
		BaseURL: config.WhatsAppBaseURL,
		Token:   config.WhatsAppToken,
	}, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create whatsapp client: %w", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var customerUoWFactory commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return uowFactory.Create()
	})
	referral, err := commands.NewReferralRewardPipeline(
		customerUoWFactory,
		whatsappClient,
		config.ReferralRewardThreshold,
		logger,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create referral pipeline: %w", err)
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *uowFactory,
		paymentGateway: paymentGateway,
		whatsappClient: whatsappClient,
		referral:       referral,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.whatsappClient, c.referral, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderPriceCommandHandler() commands.UpdateOrderPriceCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderPriceCommandHandler(
		f,
		c.paymentGateway,
		c.whatsappClient,
		services.NewPricingPolicy(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateSyncPaymentsCommandHandler() commands.SyncPaymentsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	markPaid := commands.NewMarkOrderPaidCommandHandler(f)
	return commands.NewSyncPaymentsCommandHandler(f, c.paymentGateway, markPaid, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
