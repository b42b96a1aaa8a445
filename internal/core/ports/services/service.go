package ports

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	Room      RoomSvcFacade
	Tenant    TenantSvcFacade
	Schedule  RentScheduleSvcFacade
	Balance   BalanceSvcFacade
	Payment   PaymentSvcFacade
	Rollback  RollbackSvcFacade
	Reporting ReportingSvcFacade
	Cashbook  CashbookSvcFacade
}
