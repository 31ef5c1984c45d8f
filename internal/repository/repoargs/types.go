package repoargs

type RepositoryName string

const (
	UserRepoName      RepositoryName = "user"
	ScheduleRepoName  RepositoryName = "schedule"
	OrderRepoName     RepositoryName = "order"
	OrderItemRepoName RepositoryName = "order_item"
	CouponRepoName    RepositoryName = "coupon"
	PointRepoName     RepositoryName = "point"
)
