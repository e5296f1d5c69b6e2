package i18n

var english = map[string]string{
	// Navigation
	"nav.home":      "Home",
	"nav.menu":      "Menu",
	"nav.bookTable": "Book Table",
	"nav.cart":      "Cart",
	"nav.orders":    "My Orders",

	// Cart
	"cart.title":    "Shopping Cart",
	"cart.empty":    "Your cart is empty",
	"cart.total":    "Total",
	"cart.checkout": "Checkout",
	"cart.remove":   "Remove",

	// Checkout
	"checkout.title":          "Checkout",
	"checkout.name":           "Name",
	"checkout.phone":          "Phone",
	"checkout.address":        "Delivery Address",
	"checkout.instructions":   "Special Instructions",
	"checkout.paymentMethod":  "Payment Method",
	"checkout.payment.cash":   "Cash on Delivery",
	"checkout.payment.card":   "Card",
	"checkout.payment.online": "Online Payment",
	"checkout.placeOrder":     "Place Order",
	"checkout.success":        "Your order has been received",
	"checkout.failure":        "There was an error placing your order, please try again",

	// Booking
	"booking.title":    "Book a Table",
	"booking.date":     "Date",
	"booking.time":     "Time",
	"booking.guests":   "Guests",
	"booking.requests": "Special Requests",
	"booking.submit":   "Confirm Reservation",
	"booking.success":  "Your reservation has been received",
	"booking.failure":  "There was an error creating your reservation",

	// Order tracking
	"orders.title":     "Track Orders",
	"orders.notFound":  "Order not found",
	"orders.loadError": "Failed to load orders",

	// Reservations (admin)
	"reservations.loadError": "Failed to load reservations",

	// Order statuses
	"status.order.pending":   "Pending",
	"status.order.preparing": "Preparing",
	"status.order.on_way":    "On the Way",
	"status.order.completed": "Delivered",
	"status.order.cancelled": "Cancelled",

	// Payment statuses
	"status.payment.paid":    "Paid",
	"status.payment.pending": "Payment Pending",
	"status.payment.unpaid":  "Unpaid",

	// Reservation statuses
	"status.reservation.pending":   "Pending",
	"status.reservation.confirmed": "Confirmed",
	"status.reservation.cancelled": "Cancelled",

	// Notifications
	"notify.order.title":         "New Order",
	"notify.order.message":       "New order from %s worth %.2f EGP",
	"notify.reservation.title":   "New Reservation",
	"notify.reservation.message": "New reservation from %s for %d guests on %s at %s",
	"notify.guest":               "Guest",
}
